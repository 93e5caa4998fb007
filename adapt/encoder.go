package adapt

import (
	"reflect"

	"github.com/zoobzio/typemap"
)

// Encoder binds an adapter registry to a codec. Marshal adapts a value into
// a wire-friendly tree by resolving each contained value through the
// registry's fallback lookup, then hands the tree to the codec.
//
// An Encoder is safe for concurrent use when its registry is no longer being
// mutated; freezing the registry before sharing guarantees that.
type Encoder struct {
	adapters *typemap.Registry[Adapter]
	codec    Codec
}

// NewEncoder creates an Encoder over the given adapter registry and codec.
func NewEncoder(adapters *typemap.Registry[Adapter], codec Codec) *Encoder {
	return &Encoder{adapters: adapters, codec: codec}
}

// ContentType returns the underlying codec's MIME type.
func (e *Encoder) ContentType() string {
	return e.codec.ContentType()
}

// Marshal adapts v and encodes the result with the codec.
func (e *Encoder) Marshal(v any) ([]byte, error) {
	tree, err := e.Adapt(v)
	if err != nil {
		return nil, err
	}
	return e.codec.Marshal(tree)
}

// Unmarshal decodes data into v with the codec. Adapters are encode-side;
// decoding targets typed values directly.
func (e *Encoder) Unmarshal(data []byte, v any) error {
	return e.codec.Unmarshal(data, v)
}

// Adapt converts v into its wire-friendly form. Pointers are followed to
// their referents (nil pointers adapt to nil), the referent's type is
// resolved through the registry, and values with no adapter pass through
// unchanged, except structs, which fall back to field-wise adaptation.
//
// Adapt implements Context, so registered adapters recurse through the same
// resolution.
func (e *Encoder) Adapt(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	v = rv.Interface()

	if a, ok := e.adapters.Lookup(typemap.TypeOf(rv.Type())); ok {
		return a.Adapt(e, v)
	}
	if rv.Kind() == reflect.Struct {
		return structAdapter{}.Adapt(e, v)
	}
	return v, nil
}
