package category

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/blog/handler"
	"github.com/dmitrymomot/blog/pkg/binder"
)

// BasePath is where the API is mounted.
const BasePath = "/v1/categories"

// idPattern accepts positive decimal ids that fit in int64.
const idPattern = "/{id:[1-9][0-9]{0,17}}"

type (
	idRequest struct {
		ID int64 `path:"id"`
	}

	createRequest struct {
		EditorInput
	}

	updateRequest struct {
		ID int64 `path:"id" json:"-"`
		EditorInput
	}
)

// API exposes the Service over HTTP.
type API struct {
	svc          *Service
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewAPI(svc *Service, errorHandler handler.ErrorHandler[handler.Context]) *API {
	return &API{svc: svc, errorHandler: errorHandler}
}

// Handle returns the router for BasePath. Segments that are not positive
// integers do not match and fall through to the 404 handler.
func (a *API) Handle() http.Handler {
	r := chi.NewRouter()
	r.NotFound(handler.NotFound(a.errorHandler))
	r.MethodNotAllowed(handler.MethodNotAllowed(a.errorHandler))

	r.Get("/", handler.Wrap(a.list,
		handler.WithErrorHandler[handler.Context, struct{}](a.errorHandler),
	))
	r.Post("/", handler.Wrap(a.create,
		handler.WithBinder[handler.Context, createRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, createRequest](a.errorHandler),
	))
	r.Get(idPattern, handler.Wrap(a.get,
		handler.WithBinder[handler.Context, idRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, idRequest](a.errorHandler),
	))
	r.Put(idPattern, handler.Wrap(a.update,
		handler.WithBinders[handler.Context, updateRequest](binder.Path(chi.URLParam), binder.JSON()),
		handler.WithErrorHandler[handler.Context, updateRequest](a.errorHandler),
	))
	r.Delete(idPattern, handler.Wrap(a.delete,
		handler.WithBinder[handler.Context, idRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, idRequest](a.errorHandler),
	))

	return r
}

func (a *API) list(ctx handler.Context, _ struct{}) handler.Response {
	categories, err := a.svc.List(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(categories)
}

func (a *API) get(ctx handler.Context, req idRequest) handler.Response {
	c, err := a.svc.GetByID(ctx, req.ID)
	if err != nil {
		return handler.Error(httpError(err, ""))
	}
	return handler.JSON(c)
}

func (a *API) create(ctx handler.Context, req createRequest) handler.Response {
	c, err := a.svc.Create(ctx, req.EditorInput)
	if err != nil {
		return handler.Error(httpError(err, "category.create_failed"))
	}
	return handler.JSON(c,
		handler.WithJSONStatus(http.StatusCreated),
		handler.WithLocation(fmt.Sprintf("%s/%d", BasePath, c.ID)),
	)
}

func (a *API) update(ctx handler.Context, req updateRequest) handler.Response {
	c, err := a.svc.Update(ctx, req.ID, req.EditorInput)
	if err != nil {
		return handler.Error(httpError(err, "category.update_failed"))
	}
	return handler.JSON(c)
}

func (a *API) delete(ctx handler.Context, req idRequest) handler.Response {
	c, err := a.svc.Delete(ctx, req.ID)
	if err != nil {
		return handler.Error(httpError(err, "category.delete_failed"))
	}
	return handler.JSON(c)
}

var errNotFound = handler.NewHTTPError(http.StatusNotFound, "category.not_found")

// httpError maps domain errors to HTTP errors. Conflicts keep a 500 status
// with an operation-specific message. Other errors pass through unchanged.
func httpError(err error, conflictKey string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return errNotFound.WithCause(err)
	case errors.Is(err, ErrConflict) && conflictKey != "":
		return handler.NewHTTPError(http.StatusInternalServerError, conflictKey).
			WithKind(handler.KindPersistenceConflict).
			WithCause(err)
	default:
		return err
	}
}
