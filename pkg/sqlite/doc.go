// Package sqlite bootstraps an embedded SQLite datastore through
// github.com/mattn/go-sqlite3. It mirrors the pg package: Open, Migrate,
// Healthcheck and constraint classification helpers, so the category
// repository can run locally and in tests without a PostgreSQL server.
package sqlite
