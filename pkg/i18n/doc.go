// Package i18n provides message catalogues and request locale negotiation.
//
// Translations are loaded once through a TranslationAdapter (an in-memory map
// or YAML files from any fs.FS, typically an embed.FS) and looked up with
// dot-separated keys. Templates use named placeholders in the form %{name}.
//
// The Middleware negotiates the request locale from the "lang" query parameter
// or the Accept-Language header against the supported languages, using
// golang.org/x/text/language matching, and stores it in the request context.
//
// Example:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
//		i18n.WithDefaultLanguage("pt-BR"))
//	if err != nil {
//		return err
//	}
//	r.Use(i18n.Middleware(tr.SupportedLanguages(), tr.DefaultLanguage()))
//
//	msg := tr.T(i18n.GetLocale(ctx), "validation.max_length", "max", "80")
package i18n
