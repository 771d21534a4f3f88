package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/blog/handler"
	"github.com/dmitrymomot/blog/locales"
	"github.com/dmitrymomot/blog/modules/category"
	"github.com/dmitrymomot/blog/pkg/clientip"
	"github.com/dmitrymomot/blog/pkg/environment"
	"github.com/dmitrymomot/blog/pkg/httpserver"
	"github.com/dmitrymomot/blog/pkg/i18n"
	"github.com/dmitrymomot/blog/pkg/logger"
	"github.com/dmitrymomot/blog/pkg/requestid"
)

func newTranslator(ctx context.Context, cfg appConfig, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(cfg.Locale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}

func newRouter(ctx context.Context, cfg appConfig, log *slog.Logger, ds *datastore) (http.Handler, error) {
	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	errHandler := handler.NewErrorHandler(log, tr)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
		accessLog(log),
		middleware.Recoverer,
		i18n.Middleware(tr.SupportedLanguages(), tr.DefaultLanguage()),
	)
	r.NotFound(handler.NotFound(errHandler))
	r.MethodNotAllowed(handler.MethodNotAllowed(errHandler))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, ds.ready))

	categories := category.NewAPI(category.NewService(ds.categories, log), errHandler)
	r.Mount(category.BasePath, categories.Handle())

	return r, nil
}

// accessLog records one line per request after the response is written.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAttrs(r.Context(), slog.LevelDebug, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("client_ip", clientip.GetIP(r)),
				logger.StatusCode(status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				logger.Component("http"),
			)
		})
	}
}
