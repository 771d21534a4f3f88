package i18n

import "golang.org/x/text/language"

// maxAcceptLanguageLength bounds the header size accepted for negotiation.
const maxAcceptLanguageLength = 4096

// Negotiate picks the supported language that best matches an
// Accept-Language header value. The first supported language is the
// matcher's default; fallback is returned when nothing matches.
func Negotiate(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return fallback
	}

	return match(prefs, supported, fallback)
}

// MatchLanguage resolves a single explicit language code such as a query
// parameter value.
func MatchLanguage(lang string, supported []string, fallback string) string {
	if lang == "" || len(supported) == 0 {
		return fallback
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fallback
	}
	return match([]language.Tag{tag}, supported, fallback)
}

func match(prefs []language.Tag, supported []string, fallback string) string {
	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No || idx < 0 || idx >= len(names) {
		return fallback
	}
	return names[idx]
}
