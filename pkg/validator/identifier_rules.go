package validator

import "regexp"

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug accepts lowercase ASCII letters and digits separated by single
// hyphens, with no leading or trailing hyphen. Empty values fail.
func ValidSlug(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return slugRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid slug (lowercase letters, numbers, and hyphens only)",
			TranslationKey: "validation.slug",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
