package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/blog/pkg/pg"
)

// PgxQuerier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage implements Storage on top of pgx.
type PostgresStorage struct {
	db PgxQuerier
}

func NewPostgresStorage(db PgxQuerier) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) List(ctx context.Context) ([]Category, error) {
	rows, err := s.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Category])
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *PostgresStorage) Get(ctx context.Context, id int64) (Category, error) {
	return s.one(ctx, "get category", queryGet, id)
}

func (s *PostgresStorage) Create(ctx context.Context, in EditorInput) (Category, error) {
	return s.one(ctx, "create category", queryCreate, in.Name, in.Slug)
}

func (s *PostgresStorage) Update(ctx context.Context, id int64, in EditorInput) (Category, error) {
	return s.one(ctx, "update category", queryUpdate, in.Name, in.Slug, id)
}

func (s *PostgresStorage) Delete(ctx context.Context, id int64) (Category, error) {
	return s.one(ctx, "delete category", queryDelete, id)
}

func (s *PostgresStorage) one(ctx context.Context, op, query string, args ...any) (Category, error) {
	var c Category
	err := s.db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Slug)
	switch {
	case err == nil:
		return c, nil
	case pg.IsNotFoundError(err):
		return Category{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	case pg.IsConstraintViolation(err):
		return Category{}, fmt.Errorf("%s: %w", op, errors.Join(ErrConflict, err))
	default:
		return Category{}, fmt.Errorf("%s: %w", op, err)
	}
}
