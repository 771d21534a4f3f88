package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status  int
	headers http.Header
	body    any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	b, err := json.Marshal(j.body)
	if err != nil {
		return err
	}

	for k, vs := range j.headers {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(b, '\n'))
	return err
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		r.headers.Add(key, value)
	}
}

// WithLocation sets the Location header, typically for 201 responses.
func WithLocation(url string) JSONOption {
	return WithHeader("Location", url)
}

// JSON encodes v as the response body, 200 OK by default. The body is
// marshalled before anything is written, so encoding failures still reach
// the error handler.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status:  http.StatusOK,
		headers: make(http.Header),
		body:    v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
