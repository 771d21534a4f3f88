package pg

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrymomot/blog/pkg/logger"
	"github.com/dmitrymomot/blog/pkg/migrate"
)

// Migrate applies goose migrations from migrations/cfg.MigrationsPath.
// goose needs database/sql, so the pool is bridged through pgx's stdlib adapter.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS, cfg Config, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil && log != nil {
			log.ErrorContext(ctx, "failed to close migration connection", logger.Error(err))
		}
	}()

	return migrate.Up(ctx, db, migrate.Source{
		FS:      migrations,
		Dir:     cfg.MigrationsPath,
		Dialect: "postgres",
		Table:   cfg.MigrationsTable,
	}, log)
}
