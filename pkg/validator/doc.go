// Package validator provides declarative, translation-friendly validation
// rules.
//
// A Rule pairs a Check func with a ValidationError describing the failure.
// Apply evaluates rules and aggregates every failure into ValidationErrors,
// which implements error. Each ValidationError carries a TranslationKey and
// TranslationValues so HTTP layers can render messages in the caller's locale:
//
//	err := validator.Apply(
//	    validator.Required("name", in.Name),
//	    validator.MaxLen("name", in.Name, 80),
//	    validator.ValidSlug("slug", in.Slug),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() { ... }
//	}
//
// Length rules count runes, not bytes.
package validator
