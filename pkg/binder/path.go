package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// Path binds struct fields tagged `path:"name"` using the extractor, usually
// chi.URLParam. Fields without a value keep their zero value.
//
// Supported kinds: string, signed and unsigned integers, bool.
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor is nil", ErrFailedToParsePath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return ErrInvalidTarget
		}
		rv = rv.Elem()
		rt := rv.Type()

		for i := range rt.NumField() {
			field := rv.Field(i)
			sf := rt.Field(i)
			if !field.CanSet() {
				continue
			}

			name, _, _ := strings.Cut(sf.Tag.Get("path"), ",")
			if name == "" || name == "-" {
				continue
			}

			value := extractor(r, name)
			if value == "" {
				continue
			}

			if err := setField(field, value); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrFailedToParsePath, name, err)
			}
		}

		return nil
	}
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
