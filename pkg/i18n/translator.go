package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves message keys for a language. It is immutable after
// construction and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations through the adapter. Every language code
// must be a valid BCP 47 tag; the default language must be one of them.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	for lang, m := range translations {
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguageCode, lang, err)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrNoTranslations, lang)
		}
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q has no translations", ErrNoTranslations, t.defaultLang)
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded",
		slog.Any("languages", t.SupportedLanguages()),
		slog.String("default", t.defaultLang),
	)

	return t, nil
}

// DefaultLanguage returns the language used when a requested one is missing.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, default first, the
// rest sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	return append([]string{t.defaultLang}, langs...)
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. Arguments are key-value pairs substituted into
// %{name} placeholders; an odd trailing argument is ignored.
//
// Missing languages or keys fall back to the default language, then to the
// key itself (unless disabled with WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}

	return substitute(tmpl, buildParams(args))
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	m, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := resolve(m, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case int, int64, float64, bool:
		return fmt.Sprint(v), true
	}
	return "", false
}

// resolve walks nested maps using dot-separated keys.
func resolve(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are kept as-is.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
