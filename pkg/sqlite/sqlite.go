package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/dmitrymomot/blog/pkg/migrate"
)

const driverName = "sqlite3"

var (
	ErrEmptyPath             = errors.New("empty sqlite path, set SQLITE_PATH")
	ErrFailedToOpenDatabase  = errors.New("failed to open sqlite database")
	ErrHealthcheckFailed     = errors.New("healthcheck failed, sqlite database is not available")
	ErrFailedToCreateDataDir = errors.New("failed to create sqlite data directory")
)

// Open opens (creating if needed) the database file at cfg.Path with foreign
// keys enforced and WAL journaling. SQLite serialises writers, so the pool is
// capped at a single connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Join(ErrFailedToCreateDataDir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=%d",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDatabase, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Join(ErrFailedToOpenDatabase, err)
	}
	return db, nil
}

// Migrate applies goose migrations from migrations/cfg.MigrationsPath.
func Migrate(ctx context.Context, db *sql.DB, migrations fs.FS, cfg Config, log *slog.Logger) error {
	return migrate.Up(ctx, db, migrate.Source{
		FS:      migrations,
		Dir:     cfg.MigrationsPath,
		Dialect: "sqlite3",
		Table:   cfg.MigrationsTable,
	}, log)
}

// Healthcheck returns a readiness probe that pings db.
func Healthcheck(db *sql.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// IsNotFoundError reports whether err is sql.ErrNoRows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, sql.ErrNoRows)
}

// IsConstraintViolation reports any SQLITE_CONSTRAINT error
// (unique, foreign key, not null, check).
func IsConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// IsDuplicateKeyError detects unique and primary key violations.
func IsDuplicateKeyError(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// IsForeignKeyViolationError detects referential integrity violations.
func IsForeignKeyViolationError(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
