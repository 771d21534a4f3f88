// Package pg bootstraps the PostgreSQL datastore: a pgx/v5 connection pool
// opened with retry and exponential back-off (github.com/sethvargo/go-retry),
// goose migrations applied through the pool, a readiness probe, and helpers
// that classify *pgconn.PgError values into not-found and constraint
// violations.
//
//	var cfg pg.Config
//	_ = config.Load(&cfg)
//	pool, err := pg.Connect(ctx, cfg)
//	...
//	err = pg.Migrate(ctx, pool, db.Migrations, cfg, log)
package pg
