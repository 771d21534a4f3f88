package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blog/handler"
	"github.com/dmitrymomot/blog/pkg/binder"
	"github.com/dmitrymomot/blog/pkg/i18n"
	"github.com/dmitrymomot/blog/pkg/validator"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"pt-BR": {
			"errors": map[string]any{
				"internal_error":   "Erro interno no servidor",
				"bad_request":      "Requisição inválida",
				"validation_error": "Dados inválidos",
				"not_found":        "Recurso não encontrado",
			},
			"validation": map[string]any{
				"required":   "campo obrigatório",
				"max_length": "deve ter no máximo %{max} caracteres",
			},
			"category": map[string]any{
				"not_found":     "Categoria não encontrada",
				"create_failed": "Não foi possível adicionar a categoria",
			},
		},
		"en": {
			"errors": map[string]any{
				"internal_error": "Internal server error",
			},
			"category": map[string]any{
				"not_found": "Category not found",
			},
		},
	}})
	require.NoError(t, err)
	return tr
}

type capture struct {
	buf *bytes.Buffer
	log *slog.Logger
}

func newCapture() capture {
	buf := &bytes.Buffer{}
	return capture{buf: buf, log: slog.New(slog.NewJSONHandler(buf, nil))}
}

func (c capture) entry(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(c.buf.Bytes(), &m))
	return m
}

func serveError(t *testing.T, h handler.ErrorHandler[handler.Context], err error, lang string) (*httptest.ResponseRecorder, handler.ErrorBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/categories", nil)
	if lang != "" {
		req = req.WithContext(i18n.SetLocale(req.Context(), lang))
	}
	w := httptest.NewRecorder()
	h(handler.NewContext(w, req), err)

	var body handler.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestNewErrorHandler_InternalErrorDoesNotLeak(t *testing.T) {
	t.Parallel()
	c := newCapture()
	h := handler.NewErrorHandler(c.log, newTranslator(t))

	w, body := serveError(t, h, errors.New("pq: connection refused to 10.0.0.1"), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Erro interno no servidor", body.Message)
	assert.Equal(t, "internal_error", body.Code)
	assert.Nil(t, body.Details)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")

	entry := c.entry(t)
	assert.Equal(t, "ERROR", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status_code"])
}

func TestNewErrorHandler_Validation(t *testing.T) {
	t.Parallel()
	c := newCapture()
	h := handler.NewErrorHandler(c.log, newTranslator(t))

	err := validator.Apply(
		validator.Required("name", ""),
		validator.MaxLen("slug", "abcdef", 3),
	)
	w, body := serveError(t, h, fmt.Errorf("create: %w", err), "pt-BR")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", body.Code)
	assert.Equal(t, "Dados inválidos", body.Message)
	assert.Equal(t, map[string][]string{
		"name": {"campo obrigatório"},
		"slug": {"deve ter no máximo 3 caracteres"},
	}, body.Details)
	assert.Equal(t, "WARN", c.entry(t)["level"])
}

func TestNewErrorHandler_ValidationFallsBackToMessage(t *testing.T) {
	t.Parallel()
	h := handler.NewErrorHandler(newCapture().log, newTranslator(t))

	err := validator.ValidationErrors{{Field: "name", Message: "custom", TranslationKey: "validation.unknown"}}
	_, body := serveError(t, h, err, "pt-BR")

	assert.Equal(t, []string{"custom"}, body.Details["name"])
}

func TestNewErrorHandler_BindingError(t *testing.T) {
	t.Parallel()
	h := handler.NewErrorHandler(newCapture().log, newTranslator(t))

	w, body := serveError(t, h, fmt.Errorf("%w: unknown field", binder.ErrFailedToParseJSON), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", body.Code)
	assert.Equal(t, "Requisição inválida", body.Message)
}

func TestNewErrorHandler_HTTPError(t *testing.T) {
	t.Parallel()
	h := handler.NewErrorHandler(newCapture().log, newTranslator(t))

	notFound := handler.NewHTTPError(http.StatusNotFound, "category.not_found")

	w, body := serveError(t, h, notFound, "en")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "category.not_found", body.Code)
	assert.Equal(t, "Category not found", body.Message)

	_, body = serveError(t, h, notFound, "pt-BR")
	assert.Equal(t, "Categoria não encontrada", body.Message)
}

func TestNewErrorHandler_PersistenceConflict(t *testing.T) {
	t.Parallel()
	c := newCapture()
	h := handler.NewErrorHandler(c.log, newTranslator(t))

	cause := errors.New("unique violation")
	err := handler.NewHTTPError(http.StatusInternalServerError, "category.create_failed").
		WithKind(handler.KindPersistenceConflict).
		WithCause(cause)
	require.ErrorIs(t, err, cause)

	w, body := serveError(t, h, err, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "category.create_failed", body.Code)
	assert.Equal(t, "Não foi possível adicionar a categoria", body.Message)
	assert.NotContains(t, w.Body.String(), "unique violation")

	entry := c.entry(t)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, handler.KindPersistenceConflict, entry["error_kind"])
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := handler.NewErrorHandler(newCapture().log, newTranslator(t))

	w := httptest.NewRecorder()
	handler.NotFound(h)(w, httptest.NewRequest(http.MethodGet, "/v1/categories/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recurso não encontrado","code":"not_found"}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.MethodNotAllowed(h)(w, httptest.NewRequest(http.MethodPatch, "/v1/categories", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"method_not_allowed"`)
}
