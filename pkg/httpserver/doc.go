// Package httpserver runs the blog API's http.Server with graceful shutdown on
// context cancellation or SIGINT/SIGTERM, and provides liveness/readiness
// probe handlers.
package httpserver
