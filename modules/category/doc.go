// Package category implements the blog category store: validation of editor
// input, datastore access for PostgreSQL and SQLite, and the JSON HTTP API
// mounted under /v1/categories.
//
// Every operation is a single statement. Update and Delete use RETURNING, so
// a missing id is reported as ErrNotFound without mutating anything.
// Constraint violations (duplicate slug, foreign keys) surface as
// ErrConflict; any other datastore failure is returned wrapped and is
// answered with a generic internal error.
package category
