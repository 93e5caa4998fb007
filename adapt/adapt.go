// Package adapt converts values into wire-friendly forms using a typemap
// registry of adapters.
//
// An Adapter rewrites a single value (a time.Time into an RFC 3339 string, a
// map into a string-keyed tree, an enum into its name), while an Encoder
// resolves the adapter for each value through typemap's fallback lookup and
// hands the adapted tree to a Codec for byte encoding.
//
// # Basic Usage
//
//	enc := adapt.NewEncoder(adapt.Defaults(), adapt.JSON())
//	data, err := enc.Marshal(order)
//
// Defaults() covers maps, collections, enums, and common scalar types; extra
// adapters register against the same registry:
//
//	reg := adapt.Defaults()
//	_ = reg.Register(typemap.TypeFor[Money](), adapt.AdapterFunc(adaptMoney))
//
// Struct values with no registered adapter fall back to field-wise adaptation
// driven by sentinel metadata, honoring json tag renames.
package adapt

import "errors"

// ErrMismatchedValue indicates an adapter received a value of a type other
// than the one it was registered for.
var ErrMismatchedValue = errors.New("adapt: value does not match registered type")

// Codec provides content-type aware marshaling of adapted trees.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Context lets adapters recurse into contained values with the same
// resolution rules that selected them.
type Context interface {
	// Adapt converts v into its wire-friendly form.
	Adapt(v any) (any, error)
}

// Adapter converts values of a registered type into wire-friendly forms.
type Adapter interface {
	// Adapt returns a representation of v composed of wire-safe values.
	// Containers recurse through ctx.
	Adapt(ctx Context, v any) (any, error)
}

// AdapterFunc adapts a plain function into an Adapter.
type AdapterFunc func(ctx Context, v any) (any, error)

// Adapt implements Adapter.
func (f AdapterFunc) Adapt(ctx Context, v any) (any, error) {
	return f(ctx, v)
}
