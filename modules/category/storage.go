package category

import "context"

// Storage is the datastore contract. Get, Update and Delete return
// ErrNotFound for unknown ids; Create, Update and Delete return ErrConflict
// for constraint violations.
type Storage interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, in EditorInput) (Category, error)
	Update(ctx context.Context, id int64, in EditorInput) (Category, error)
	Delete(ctx context.Context, id int64) (Category, error)
}

// Placeholders are numbered in order of appearance: SQLite treats $N as a
// named parameter and binds it positionally.
const (
	queryList   = `SELECT id, name, slug FROM categories ORDER BY id`
	queryGet    = `SELECT id, name, slug FROM categories WHERE id = $1`
	queryCreate = `INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id, name, slug`
	queryUpdate = `UPDATE categories SET name = $1, slug = $2 WHERE id = $3 RETURNING id, name, slug`
	queryDelete = `DELETE FROM categories WHERE id = $1 RETURNING id, name, slug`
)
