package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blog/pkg/i18n"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"pt-BR": {
			"category": map[string]any{
				"not_found": "Categoria não encontrada",
			},
			"validation": map[string]any{
				"max_length": "deve ter no máximo %{max} caracteres",
			},
		},
		"en": {
			"category": map[string]any{
				"not_found": "Category not found",
			},
			"only_en": "English only",
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	t.Run("nested key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Categoria não encontrada", tr.T("pt-BR", "category.not_found"))
		assert.Equal(t, "Category not found", tr.T("en", "category.not_found"))
	})

	t.Run("named parameters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "deve ter no máximo 80 caracteres", tr.T("pt-BR", "validation.max_length", "max", "80"))
	})

	t.Run("unknown parameter kept", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "deve ter no máximo %{max} caracteres", tr.T("pt-BR", "validation.max_length", "min", "1"))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "deve ter no máximo 3 caracteres", tr.T("en", "validation.max_length", "max", "3"))
		assert.Equal(t, "Categoria não encontrada", tr.T("fr", "category.not_found"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
	})

	t.Run("map value is not a translation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "category", tr.T("en", "category"))
	})
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, tr.T("en", "missing.key"))
}

func TestTranslator_Languages(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	assert.Equal(t, "pt-BR", tr.DefaultLanguage())
	assert.Equal(t, []string{"pt-BR", "en"}, tr.SupportedLanguages())
	assert.True(t, tr.HasTranslation("en", "only_en"))
	assert.False(t, tr.HasTranslation("pt-BR", "only_en"))

	tr = newMapTranslator(t, i18n.WithDefaultLanguage("en"))
	assert.Equal(t, []string{"en", "pt-BR"}, tr.SupportedLanguages())
	assert.Equal(t, "English only", tr.T("pt-BR", "only_en"))
}

func TestNewTranslator_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := i18n.NewTranslator(ctx, nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(ctx, &i18n.MapAdapter{})
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.NewTranslator(ctx, &i18n.MapAdapter{Data: map[string]map[string]any{
		"not a tag!": {"k": "v"},
		"pt-BR":      {"k": "v"},
	}})
	assert.ErrorIs(t, err, i18n.ErrInvalidLanguageCode)

	_, err = i18n.NewTranslator(ctx, &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"k": "v"},
	}})
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/a.yaml": {Data: []byte("en:\n  greeting: Hello\n  errors:\n    internal: Boom\n")},
		"locales/b.yml":  {Data: []byte("en:\n  greeting: Hi\npt-BR:\n  greeting: Olá\n")},
		"locales/c.txt":  {Data: []byte("ignored")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
	require.NoError(t, err)

	assert.Equal(t, "Hi", tr.T("en", "greeting"))
	assert.Equal(t, "Olá", tr.T("pt-BR", "greeting"))
	assert.Equal(t, "Boom", tr.T("en", "errors.internal"))
}

func TestFSAdapter_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "missing").Load(ctx)
	assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)

	broken := fstest.MapFS{"l/x.yaml": {Data: []byte("en: [unclosed")}}
	_, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), broken, "l").Load(ctx)
	assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)

	flat := fstest.MapFS{"l/x.yaml": {Data: []byte("en: plain string\n")}}
	_, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), flat, "l").Load(ctx)
	assert.ErrorIs(t, err, i18n.ErrInvalidYAMLStructure)

	empty := fstest.MapFS{"l/readme.md": {Data: []byte("#")}}
	_, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), empty, "l").Load(ctx)
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, ".").Load(cancelled)
	assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
}
