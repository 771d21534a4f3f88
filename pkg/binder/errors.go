package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrInvalidTarget        = errors.New("binding target must be a non-nil pointer to struct")
)

// IsBindingError reports whether err was produced while decoding a request.
func IsBindingError(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrMissingContentType) ||
		errors.Is(err, ErrFailedToParseJSON) ||
		errors.Is(err, ErrFailedToParsePath)
}
