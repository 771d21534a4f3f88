package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/blog/migrations"
	"github.com/dmitrymomot/blog/pkg/logger"
	"github.com/dmitrymomot/blog/svc/token"
)

type cli struct {
	EnvFiles []string `long:"env-file" description:"dotenv file loaded before reading the environment (repeatable)"`

	Serve   serveCommand   `command:"serve" description:"Apply migrations and start the HTTP API"`
	Migrate migrateCommand `command:"migrate" description:"Apply database migrations and exit"`
	Token   tokenCommand   `command:"token" description:"Issue or verify session tokens"`

	ctx context.Context
	out io.Writer
}

func newCLI(ctx context.Context, out io.Writer) *cli {
	c := &cli{ctx: ctx, out: out}
	c.Serve.cli = c
	c.Migrate.cli = c
	c.Token.Issue.cli = c
	c.Token.Verify.cli = c
	return c
}

func (c *cli) loadConfig() (appConfig, *slog.Logger, error) {
	cfg, err := loadAppConfig(c.EnvFiles...)
	if err != nil {
		return appConfig{}, nil, err
	}
	return cfg, newLogger(cfg), nil
}

type serveCommand struct {
	SkipMigrations bool `long:"skip-migrations" description:"Do not apply migrations before serving"`

	cli *cli
}

func (s *serveCommand) Execute([]string) error {
	cfg, log, err := s.cli.loadConfig()
	if err != nil {
		return err
	}
	ctx := s.cli.ctx

	// The issuer has no HTTP surface; building it makes a bad secret fatal
	// at startup.
	if _, err := newIssuer(s.cli.EnvFiles...); err != nil {
		log.ErrorContext(ctx, "invalid token configuration", logger.Error(err))
		return err
	}

	ds, err := openDatastore(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open datastore", logger.Error(err))
		return err
	}
	defer ds.close()

	if !s.SkipMigrations {
		if err := ds.migrate(ctx, migrations.FS); err != nil {
			log.ErrorContext(ctx, "failed to apply migrations", logger.Error(err))
			return err
		}
	}

	router, err := newRouter(ctx, cfg, log, ds)
	if err != nil {
		log.ErrorContext(ctx, "failed to build router", logger.Error(err))
		return err
	}

	return newServer(cfg, log).Run(ctx, router)
}

type migrateCommand struct {
	cli *cli
}

func (m *migrateCommand) Execute([]string) error {
	cfg, log, err := m.cli.loadConfig()
	if err != nil {
		return err
	}
	ctx := m.cli.ctx

	ds, err := openDatastore(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open datastore", logger.Error(err))
		return err
	}
	defer ds.close()

	if err := ds.migrate(ctx, migrations.FS); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", logger.Error(err))
		return err
	}
	log.InfoContext(ctx, "migrations applied", slog.String("driver", cfg.DBDriver))
	return nil
}

type tokenCommand struct {
	Issue  tokenIssueCommand  `command:"issue" description:"Print a new signed session token"`
	Verify tokenVerifyCommand `command:"verify" description:"Verify a session token and print its expiry"`
}

type tokenIssueCommand struct {
	cli *cli
}

func (t *tokenIssueCommand) Execute([]string) error {
	issuer, err := newIssuer(t.cli.EnvFiles...)
	if err != nil {
		return err
	}
	tok, err := issuer.Issue(t.cli.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(t.cli.out, tok)
	return err
}

type tokenVerifyCommand struct {
	Args struct {
		Token string `positional-arg-name:"token" required:"true"`
	} `positional-args:"true"`

	cli *cli
}

func (t *tokenVerifyCommand) Execute([]string) error {
	issuer, err := newIssuer(t.cli.EnvFiles...)
	if err != nil {
		return err
	}
	claims, err := issuer.Verify(t.Args.Token)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(t.cli.out, "valid until %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	return err
}

func newIssuer(envFiles ...string) (*token.Issuer, error) {
	cfg, err := loadTokenConfig(envFiles...)
	if err != nil {
		return nil, err
	}
	return token.NewIssuer([]byte(cfg.SigningKey),
		token.WithTTL(cfg.TTL),
		token.WithIssuer(cfg.Issuer),
	)
}
