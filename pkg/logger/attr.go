package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorKind records the error taxonomy bucket (validation, not_found,
// persistence_conflict, internal) under the key "error_kind".
func ErrorKind(kind string) slog.Attr {
	return slog.String("error_kind", kind)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// CategoryID records a category identifier under the key "category_id".
func CategoryID(id int64) slog.Attr {
	return slog.Int64("category_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// StatusCode records an HTTP status under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
