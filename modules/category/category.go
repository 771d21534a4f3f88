package category

import (
	"errors"

	"github.com/dmitrymomot/blog/pkg/validator"
)

const (
	MaxNameLength = 80
	MaxSlugLength = 80
)

var (
	ErrNotFound = errors.New("category not found")
	ErrConflict = errors.New("category violates a datastore constraint")
)

// Category is a persisted blog category. ID is assigned by the datastore and
// never changes.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// EditorInput is the payload accepted by create and update.
type EditorInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Validate returns validator.ValidationErrors listing every failed rule.
func (in EditorInput) Validate() error {
	rules := []validator.Rule{
		validator.Required("name", in.Name),
		validator.MaxLen("name", in.Name, MaxNameLength),
		validator.Required("slug", in.Slug),
	}
	if in.Slug != "" {
		rules = append(rules,
			validator.ValidSlug("slug", in.Slug),
			validator.MaxLen("slug", in.Slug, MaxSlugLength),
		)
	}
	return validator.Apply(rules...)
}
