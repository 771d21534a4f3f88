// Package handler provides type-safe HTTP request handling for JSON APIs.
//
// A HandlerFunc receives a Context and a typed request value populated by
// binders, and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type createRequest struct {
//		Name string `json:"name"`
//	}
//
//	func create(ctx handler.Context, req createRequest) handler.Response {
//		item, err := svc.Create(ctx, req.Name)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	r.Post("/items", handler.Wrap(create,
//		handler.WithBinder[handler.Context, createRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, createRequest](errHandler),
//	))
//
// # Errors
//
// Errors from binders, handlers and rendering go to the configured
// ErrorHandler. NewErrorHandler classifies them (validation failures, binding
// failures, HTTPError values, anything else) into a status code and a JSON
// envelope {"message", "code", "details"} whose message is translated into
// the request locale. Unclassified errors never leak their text to clients.
package handler
