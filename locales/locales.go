// Package locales embeds the YAML message catalogues.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
