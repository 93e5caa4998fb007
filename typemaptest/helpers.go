// Package typemaptest provides test utilities for typemap.
package typemaptest

import (
	"github.com/zoobzio/typemap"
)

// FakeIntrospector is a scriptable typemap.Introspector for exercising the
// registry's fallback tiers with synthetic descriptors. The zero behaviors
// are conservative: nothing is map-, collection-, or enum-like, parameterized
// descriptors reduce to their base, and names fall back to descriptor keys.
type FakeIntrospector struct {
	// MapLike, CollectionLike, and EnumLike classify specific descriptors.
	MapLike        map[typemap.Descriptor]bool
	CollectionLike map[typemap.Descriptor]bool
	EnumLike       map[typemap.Descriptor]bool

	// Raw overrides raw-form derivation for specific descriptors.
	Raw map[typemap.Descriptor]typemap.Descriptor

	// Names overrides simple-name rendering for specific descriptors.
	Names map[typemap.Descriptor]string
}

var _ typemap.Introspector = (*FakeIntrospector)(nil)

// NewFakeIntrospector returns a FakeIntrospector with all tables initialized.
func NewFakeIntrospector() *FakeIntrospector {
	return &FakeIntrospector{
		MapLike:        make(map[typemap.Descriptor]bool),
		CollectionLike: make(map[typemap.Descriptor]bool),
		EnumLike:       make(map[typemap.Descriptor]bool),
		Raw:            make(map[typemap.Descriptor]typemap.Descriptor),
		Names:          make(map[typemap.Descriptor]string),
	}
}

// RawForm returns the scripted raw form, or the parameterized base.
func (f *FakeIntrospector) RawForm(d typemap.Descriptor) (typemap.Descriptor, bool) {
	if raw, ok := f.Raw[d]; ok && raw != d {
		return raw, true
	}
	if base, ok := d.Base(); ok {
		return base, true
	}
	return d, false
}

// IsMapLike reports scripted map-likeness; Maps itself always qualifies.
func (f *FakeIntrospector) IsMapLike(d typemap.Descriptor) bool {
	return d == typemap.Maps || f.MapLike[d]
}

// IsCollectionLike reports scripted collection-likeness.
func (f *FakeIntrospector) IsCollectionLike(d typemap.Descriptor) bool {
	return d == typemap.Collections || f.CollectionLike[d]
}

// IsEnumLike reports scripted enum-likeness.
func (f *FakeIntrospector) IsEnumLike(d typemap.Descriptor) bool {
	return d == typemap.Enums || f.EnumLike[d]
}

// SimpleName returns the scripted name, or the descriptor key.
func (f *FakeIntrospector) SimpleName(d typemap.Descriptor) string {
	if name, ok := f.Names[d]; ok {
		return name
	}
	return d.Key()
}
