package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blog/pkg/migrate"
	"github.com/dmitrymomot/blog/pkg/sqlite"
)

var testMigrations = fstest.MapFS{
	"sqlite/00001_init.sql": &fstest.MapFile{Data: []byte(`-- +goose Up
CREATE TABLE parents (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL UNIQUE);
CREATE TABLE children (id INTEGER PRIMARY KEY AUTOINCREMENT, parent_id INTEGER NOT NULL REFERENCES parents(id));

-- +goose Down
DROP TABLE children;
DROP TABLE parents;
`)},
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := sqlite.Config{
		Path:            filepath.Join(t.TempDir(), "data", "test.db"),
		MigrationsPath:  "sqlite",
		MigrationsTable: "schema_migrations",
	}
	db, err := sqlite.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.Migrate(context.Background(), db, testMigrations, cfg, nil))
	return db
}

func TestOpen(t *testing.T) {
	t.Parallel()

	_, err := sqlite.Open(context.Background(), sqlite.Config{})
	assert.ErrorIs(t, err, sqlite.ErrEmptyPath)

	db := openTestDB(t)
	assert.NoError(t, sqlite.Healthcheck(db)(context.Background()))
}

func TestMigrateMissingDir(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	err := sqlite.Migrate(context.Background(), db, testMigrations, sqlite.Config{MigrationsPath: "nope"}, nil)
	assert.ErrorIs(t, err, migrate.ErrMigrationsDirNotFound)
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO parents (name) VALUES ('a')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO parents (name) VALUES ('a')`)
	require.Error(t, err)
	assert.True(t, sqlite.IsConstraintViolation(err))
	assert.True(t, sqlite.IsDuplicateKeyError(err))
	assert.False(t, sqlite.IsForeignKeyViolationError(err))

	_, err = db.ExecContext(ctx, `INSERT INTO children (parent_id) VALUES (999)`)
	require.Error(t, err)
	assert.True(t, sqlite.IsConstraintViolation(err))
	assert.True(t, sqlite.IsForeignKeyViolationError(err))

	err = db.QueryRowContext(ctx, `SELECT id FROM parents WHERE name = 'missing'`).Scan(new(int64))
	assert.True(t, sqlite.IsNotFoundError(err))
	assert.False(t, sqlite.IsConstraintViolation(err))
}
