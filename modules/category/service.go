package category

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/blog/pkg/logger"
)

// Service validates editor input and delegates to Storage.
type Service struct {
	storage Storage
	log     *slog.Logger
}

func NewService(storage Storage, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		storage: storage,
		log:     log.With(logger.Component("category")),
	}
}

// List returns all categories ordered by id. It never returns partial
// results.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.storage.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Category, error) {
	return s.storage.Get(ctx, id)
}

// Create validates in and inserts a new category.
func (s *Service) Create(ctx context.Context, in EditorInput) (Category, error) {
	if err := in.Validate(); err != nil {
		return Category{}, err
	}

	c, err := s.storage.Create(ctx, in)
	if err != nil {
		return Category{}, err
	}

	s.log.InfoContext(ctx, "category created", logger.CategoryID(c.ID), slog.String("slug", c.Slug))
	return c, nil
}

// Update validates in and overwrites name and slug of an existing category.
func (s *Service) Update(ctx context.Context, id int64, in EditorInput) (Category, error) {
	if err := in.Validate(); err != nil {
		return Category{}, err
	}

	c, err := s.storage.Update(ctx, id, in)
	if err != nil {
		return Category{}, err
	}

	s.log.InfoContext(ctx, "category updated", logger.CategoryID(c.ID), slog.String("slug", c.Slug))
	return c, nil
}

// Delete removes a category and returns its last state.
func (s *Service) Delete(ctx context.Context, id int64) (Category, error) {
	c, err := s.storage.Delete(ctx, id)
	if err != nil {
		return Category{}, err
	}

	s.log.InfoContext(ctx, "category deleted", logger.CategoryID(c.ID))
	return c, nil
}
