package adapt

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/zoobzio/typemap"
)

// Defaults returns a mutable adapter registry pre-populated with category
// adapters for maps, collections, and enums, plus exact adapters for common
// scalar types:
//
//   - time.Time -> RFC 3339 string
//   - time.Duration -> duration string ("1h30m")
//   - []byte -> base64 string
//   - url.URL -> URL string
//
// Callers may register further adapters or freeze the result before sharing.
func Defaults() *typemap.Registry[Adapter] {
	r := typemap.New[Adapter]()

	// Fresh registry; registration cannot fail.
	_ = r.Register(typemap.Maps, AdapterFunc(adaptMap))
	_ = r.Register(typemap.Collections, AdapterFunc(adaptCollection))
	_ = r.Register(typemap.Enums, AdapterFunc(adaptEnum))
	_ = r.Register(typemap.TypeFor[time.Time](), AdapterFunc(adaptTime))
	_ = r.Register(typemap.TypeFor[time.Duration](), AdapterFunc(adaptDuration))
	_ = r.Register(typemap.TypeFor[[]byte](), AdapterFunc(adaptBytes))
	_ = r.Register(typemap.TypeFor[url.URL](), AdapterFunc(adaptURL))

	return r
}

// adaptMap converts any map into map[string]any, stringifying keys and
// recursively adapting values.
func adaptMap(ctx Context, v any) (any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: expected map, got %T", ErrMismatchedValue, v)
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		av, err := ctx.Adapt(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		out[fmt.Sprint(iter.Key().Interface())] = av
	}
	return out, nil
}

// adaptCollection converts any slice or array into []any with recursively
// adapted elements.
func adaptCollection(ctx Context, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: expected slice or array, got %T", ErrMismatchedValue, v)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		av, err := ctx.Adapt(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = av
	}
	return out, nil
}

// adaptEnum renders an enumeration value by its name.
func adaptEnum(_ Context, v any) (any, error) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	return fmt.Sprint(v), nil
}

func adaptTime(_ Context, v any) (any, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("%w: expected time.Time, got %T", ErrMismatchedValue, v)
	}
	return t.Format(time.RFC3339Nano), nil
}

func adaptDuration(_ Context, v any) (any, error) {
	d, ok := v.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("%w: expected time.Duration, got %T", ErrMismatchedValue, v)
	}
	return d.String(), nil
}

func adaptBytes(_ Context, v any) (any, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: expected []byte, got %T", ErrMismatchedValue, v)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func adaptURL(_ Context, v any) (any, error) {
	u, ok := v.(url.URL)
	if !ok {
		return nil, fmt.Errorf("%w: expected url.URL, got %T", ErrMismatchedValue, v)
	}
	return u.String(), nil
}
