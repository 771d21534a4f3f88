package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrNoTranslations       = errors.New("no translations found")
	ErrInvalidLanguageCode  = errors.New("invalid language code")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidYAMLStructure = errors.New("invalid YAML structure")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadDir      = errors.New("failed to read translations directory")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
)
