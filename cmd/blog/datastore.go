package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/blog/modules/category"
	"github.com/dmitrymomot/blog/pkg/logger"
	"github.com/dmitrymomot/blog/pkg/pg"
	"github.com/dmitrymomot/blog/pkg/sqlite"
)

var ErrUnknownDriver = errors.New("unknown datastore driver")

// datastore bundles what the commands need from the configured driver.
type datastore struct {
	categories category.Storage
	ready      func(context.Context) error
	migrate    func(ctx context.Context, migrations fs.FS) error
	close      func()
}

func openDatastore(ctx context.Context, cfg appConfig, log *slog.Logger) (*datastore, error) {
	switch cfg.DBDriver {
	case driverPostgres:
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "connected to postgres", logger.Component("datastore"))
		return postgresDatastore(pool, cfg.PG, log), nil

	case driverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "opened sqlite database",
			logger.Component("datastore"),
			slog.String("path", cfg.SQLite.Path),
		)
		return sqliteDatastore(db, cfg.SQLite, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DBDriver)
	}
}

func postgresDatastore(pool *pgxpool.Pool, cfg pg.Config, log *slog.Logger) *datastore {
	return &datastore{
		categories: category.NewPostgresStorage(pool),
		ready:      pg.Healthcheck(pool),
		migrate: func(ctx context.Context, migrations fs.FS) error {
			return pg.Migrate(ctx, pool, migrations, cfg, log)
		},
		close: pool.Close,
	}
}

func sqliteDatastore(db *sql.DB, cfg sqlite.Config, log *slog.Logger) *datastore {
	return &datastore{
		categories: category.NewSQLiteStorage(db),
		ready:      sqlite.Healthcheck(db),
		migrate: func(ctx context.Context, migrations fs.FS) error {
			return sqlite.Migrate(ctx, db, migrations, cfg, log)
		},
		close: func() {
			if err := db.Close(); err != nil {
				log.Error("failed to close sqlite database", logger.Error(err))
			}
		},
	}
}
