package i18n

import (
	"net/http"
	"strings"
)

// LangQueryParam overrides Accept-Language when present.
const LangQueryParam = "lang"

// Middleware negotiates the request locale against supported and stores it
// in the request context. The "lang" query parameter wins over the
// Accept-Language header; fallback applies when neither matches.
func Middleware(supported []string, fallback string) func(http.Handler) http.Handler {
	if fallback == "" {
		fallback = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := strings.TrimSpace(r.URL.Query().Get(LangQueryParam)); q != "" {
				lang = MatchLanguage(q, supported, "")
			}
			if lang == "" {
				lang = Negotiate(r.Header.Get("Accept-Language"), supported, fallback)
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
