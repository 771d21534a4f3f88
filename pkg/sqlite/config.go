package sqlite

import "time"

type Config struct {
	Path        string        `env:"SQLITE_PATH" envDefault:"blog.db"`
	BusyTimeout time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`

	MigrationsPath  string `env:"SQLITE_MIGRATIONS_PATH" envDefault:"sqlite"` // directory inside the migrations FS
	MigrationsTable string `env:"SQLITE_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}
