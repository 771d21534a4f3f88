// Package binder decodes HTTP request data into typed request structs.
//
// Each binder has the signature func(r *http.Request, v any) error and
// handles only its own source, so several can be combined on one handler:
//
//	type updateRequest struct {
//		ID   int64  `path:"id" json:"-"`
//		Name string `json:"name"`
//	}
//
//	r.Put("/{id}", handler.Wrap(h, handler.WithBinders[handler.Context, updateRequest](
//		binder.Path(chi.URLParam),
//		binder.JSON(),
//	)))
//
// JSON decoding is strict: unknown fields, trailing data and bodies larger
// than DefaultMaxJSONSize are rejected. All failures wrap one of the
// package's sentinel errors so callers can map them to a 400 response.
package binder
