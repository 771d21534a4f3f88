package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrymomot/blog/pkg/sqlite"
)

// SQLiteStorage implements Storage on database/sql with the go-sqlite3
// driver. It shares the PostgreSQL statements; RETURNING needs SQLite 3.35+.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) List(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, id int64) (Category, error) {
	return s.one(ctx, "get category", queryGet, id)
}

func (s *SQLiteStorage) Create(ctx context.Context, in EditorInput) (Category, error) {
	return s.one(ctx, "create category", queryCreate, in.Name, in.Slug)
}

func (s *SQLiteStorage) Update(ctx context.Context, id int64, in EditorInput) (Category, error) {
	return s.one(ctx, "update category", queryUpdate, in.Name, in.Slug, id)
}

func (s *SQLiteStorage) Delete(ctx context.Context, id int64) (Category, error) {
	return s.one(ctx, "delete category", queryDelete, id)
}

func (s *SQLiteStorage) one(ctx context.Context, op, query string, args ...any) (Category, error) {
	var c Category
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Slug)
	switch {
	case err == nil:
		return c, nil
	case sqlite.IsNotFoundError(err):
		return Category{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	case sqlite.IsConstraintViolation(err):
		return Category{}, fmt.Errorf("%s: %w", op, errors.Join(ErrConflict, err))
	default:
		return Category{}, fmt.Errorf("%s: %w", op, err)
	}
}
