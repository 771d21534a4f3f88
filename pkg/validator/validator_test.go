package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blog/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty message", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("accessors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "slug", Message: "bad"})
		errs.Add(validator.ValidationError{Field: "name", Message: "too long"})

		assert.Equal(t, "validation failed: name: is required; slug: bad; name: too long", errs.Error())
		assert.True(t, errs.Has("name"))
		assert.False(t, errs.Has("id"))
		assert.Equal(t, []string{"is required", "too long"}, errs.Get("name"))
		assert.Equal(t, []string{"name", "slug"}, errs.Fields())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "Tech"),
			validator.MaxLen("name", "Tech", 80),
			validator.ValidSlug("slug", "tech"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "   "),
			validator.ValidSlug("slug", "Not A Slug"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "validation.slug", verrs[1].TranslationKey)
	})

	t.Run("extract through wrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("create: %w", validator.Apply(validator.Required("name", "")))
		assert.True(t, validator.IsValidationError(err))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
	})

	t.Run("not a validation error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})
}

func TestLengthRulesCountRunes(t *testing.T) {
	t.Parallel()

	// "Programação" is 11 runes but 13 bytes.
	assert.NoError(t, validator.Apply(validator.MaxLen("name", "Programação", 11)))
	assert.NoError(t, validator.Apply(validator.MinLen("name", "Programação", 11)))
	assert.Error(t, validator.Apply(validator.MinLen("name", "Programação", 12)))

	verrs := validator.ExtractValidationErrors(validator.Apply(validator.MaxLen("name", "abcd", 3)))
	require.Len(t, verrs, 1)
	assert.Equal(t, 3, verrs[0].TranslationValues["max"])
}

func TestValidSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug string
		ok   bool
	}{
		{"tech", true},
		{"web-dev-2025", true},
		{"a", true},
		{"", false},
		{"Tech", false},
		{"-tech", false},
		{"tech-", false},
		{"tech--dev", false},
		{"tech dev", false},
		{"programação", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidSlug("slug", tt.slug))
			assert.Equal(t, tt.ok, err == nil)
		})
	}
}
