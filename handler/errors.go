package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// KindPersistenceConflict marks datastore constraint failures. They are
// answered with a 5xx status but logged at warn level.
const KindPersistenceConflict = "persistence_conflict"

// HTTPError is an error with a status code and a translation key. The key,
// without its "errors." prefix, is also the machine-readable response code.
type HTTPError struct {
	Code int
	Key  string
	Kind string
	Err  error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// WithCause returns a copy of e wrapping err.
func (e HTTPError) WithCause(err error) HTTPError {
	e.Err = err
	return e
}

// WithKind returns a copy of e tagged with kind.
func (e HTTPError) WithKind(kind string) HTTPError {
	e.Kind = kind
	return e
}

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest       = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "errors.method_not_allowed"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal_error"}
)
