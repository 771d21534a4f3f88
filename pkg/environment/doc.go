// Package environment carries the deployment environment (development,
// staging, production) of the blog service through context.Context, HTTP
// requests and structured logs.
//
// Parse normalises the raw APP_ENV value and Middleware stamps it on every
// request. The logger package uses it to pick output defaults.
package environment
