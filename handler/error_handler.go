package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/blog/pkg/binder"
	"github.com/dmitrymomot/blog/pkg/i18n"
	"github.com/dmitrymomot/blog/pkg/logger"
	"github.com/dmitrymomot/blog/pkg/requestid"
	"github.com/dmitrymomot/blog/pkg/validator"
)

// Translator resolves translation keys for a language.
type Translator interface {
	T(lang, key string, args ...string) string
}

// ErrorBody is the JSON envelope for error responses.
type ErrorBody struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Details map[string][]string `json:"details,omitempty"`
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Kind       string
	LogLevel   slog.Level
	Validation validator.ValidationErrors
}

// Code returns the machine-readable response code.
func (i ErrorInfo) Code() string {
	return strings.TrimPrefix(i.Key, "errors.")
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternal.Code,
		Key:        ErrInternal.Key,
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusBadRequest
		info.Key = "errors.validation_error"
		info.Validation = validator.ExtractValidationErrors(err)
	case binder.IsBindingError(err):
		info.StatusCode = ErrBadRequest.Code
		info.Key = ErrBadRequest.Key
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
		info.Kind = httpErr.Kind
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError || info.Kind == KindPersistenceConflict {
		info.LogLevel = slog.LevelWarn
	}

	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.StatusCode(info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	}
	if info.Kind != "" {
		attrs = append(attrs, logger.ErrorKind(info.Kind))
	}
	log.LogAttrs(r.Context(), info.LogLevel, "request error", attrs...)
}

// translateDetails renders field errors in the request language, keeping
// the first-failure field order inside each list.
func translateDetails(tr Translator, lang string, verrs validator.ValidationErrors) map[string][]string {
	if len(verrs) == 0 {
		return nil
	}
	details := make(map[string][]string, len(verrs))
	for _, ve := range verrs {
		msg := ve.Message
		if ve.TranslationKey != "" {
			args := make([]string, 0, len(ve.TranslationValues)*2)
			for k, v := range ve.TranslationValues {
				args = append(args, k, fmt.Sprint(v))
			}
			if translated := tr.T(lang, ve.TranslationKey, args...); translated != ve.TranslationKey {
				msg = translated
			}
		}
		details[ve.Field] = append(details[ve.Field], msg)
	}
	return details
}

// NewErrorHandler creates the JSON error handler. Client errors are logged at
// warn level, server errors at error level except persistence conflicts.
func NewErrorHandler(log *slog.Logger, tr Translator) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		lang := i18n.GetLocale(ctx.Request().Context())
		body := ErrorBody{
			Message: tr.T(lang, info.Key),
			Code:    info.Code(),
			Details: translateDetails(tr, lang, info.Validation),
		}

		resp := JSON(body, WithJSONStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}

// NotFound adapts an ErrorHandler to an http.HandlerFunc for unmatched routes.
func NotFound(h ErrorHandler[Context]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r), ErrNotFound)
	}
}

// MethodNotAllowed adapts an ErrorHandler to an http.HandlerFunc for routes
// matched without a handler for the method.
func MethodNotAllowed(h ErrorHandler[Context]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r), ErrMethodNotAllowed)
	}
}
