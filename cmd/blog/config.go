package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/blog/pkg/config"
	"github.com/dmitrymomot/blog/pkg/environment"
	"github.com/dmitrymomot/blog/pkg/httpserver"
	"github.com/dmitrymomot/blog/pkg/logger"
	"github.com/dmitrymomot/blog/pkg/pg"
	"github.com/dmitrymomot/blog/pkg/requestid"
	"github.com/dmitrymomot/blog/pkg/sqlite"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

type appConfig struct {
	Name     string `env:"APP_NAME" envDefault:"blog"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	Locale   string `env:"APP_LOCALE" envDefault:"pt-BR"`
	LogLevel string `env:"LOG_LEVEL"`
	DBDriver string `env:"DB_DRIVER" envDefault:"postgres"`

	HTTP   httpserver.Config
	PG     pg.Config
	SQLite sqlite.Config
}

type tokenConfig struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required,notEmpty"`
	TTL        time.Duration `env:"JWT_TTL" envDefault:"8h"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"blog"`
}

func envFileOptions(files []string) []config.Option {
	if len(files) == 0 {
		return nil
	}
	return []config.Option{config.WithEnvFiles(files...)}
}

func loadAppConfig(envFiles ...string) (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg, envFileOptions(envFiles)...); err != nil {
		return appConfig{}, err
	}
	if _, err := cfg.logLevel(); err != nil {
		return appConfig{}, err
	}
	switch cfg.DBDriver {
	case driverPostgres, driverSQLite:
	default:
		return appConfig{}, fmt.Errorf("%w: DB_DRIVER must be %q or %q, got %q",
			config.ErrParsingConfig, driverPostgres, driverSQLite, cfg.DBDriver)
	}
	return cfg, nil
}

func loadTokenConfig(envFiles ...string) (tokenConfig, error) {
	var cfg tokenConfig
	if err := config.Load(&cfg, envFileOptions(envFiles)...); err != nil {
		return tokenConfig{}, err
	}
	return cfg, nil
}

// logLevel returns nil when LOG_LEVEL is unset so the environment default
// applies.
func (c appConfig) logLevel() (*slog.Level, error) {
	if c.LogLevel == "" {
		return nil, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %w", config.ErrParsingConfig, err)
	}
	return &level, nil
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if level, _ := cfg.logLevel(); level != nil {
		opts = append(opts, logger.WithLevel(*level))
	}
	return logger.New(opts...)
}

func newServer(cfg appConfig, log *slog.Logger) *httpserver.Server {
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
}
