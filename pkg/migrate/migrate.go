// Package migrate runs goose migrations from an embedded filesystem against a
// database/sql handle and routes goose output through slog.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

var (
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrMigrationPathNotProvided = errors.New("migration path not provided")
	ErrMigrationsDirNotFound    = errors.New("migrations directory not found")
)

// goose keeps dialect, base FS and table name in package globals.
var mu sync.Mutex

// Source describes where migrations live and how they are tracked.
type Source struct {
	FS      fs.FS  // filesystem holding the .sql files
	Dir     string // directory inside FS
	Dialect string // goose dialect: "postgres" or "sqlite3"
	Table   string // version table name
}

// Up applies all pending migrations from src.
func Up(ctx context.Context, db *sql.DB, src Source, log *slog.Logger) error {
	if src.Dir == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}
	if src.FS != nil {
		if _, err := fs.Stat(src.FS, src.Dir); err != nil {
			return errors.Join(ErrMigrationsDirNotFound, err)
		}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(src.FS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&slogAdapter{log: log})
	if src.Table != "" {
		goose.SetTableName(src.Table)
	}

	if err := goose.SetDialect(src.Dialect); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, src.Dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// slogAdapter maps goose's Printf/Fatalf logging onto slog.
type slogAdapter struct {
	log *slog.Logger
}

func (a *slogAdapter) Fatalf(format string, v ...any) {
	a.log.Error(fmt.Sprintf(format, v...), slog.String("component", "migrate"))
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.log.Info(fmt.Sprintf(format, v...), slog.String("component", "migrate"))
}
