package typemap

import (
	"fmt"
	"reflect"
	"strings"
)

// Introspector supplies the type knowledge the registry needs but does not
// own: raw-form derivation, structural classification, and diagnostic
// rendering. Implementations must be safe for concurrent use.
//
// RawForm must be strictly reducing: repeated application starting from any
// descriptor reaches a fixed point in finitely many steps. The registry's
// fallback recursion relies on this to terminate.
type Introspector interface {
	// RawForm returns the raw/erased form of d and whether it differs from d.
	RawForm(d Descriptor) (Descriptor, bool)

	// IsMapLike reports whether d denotes a map-like type.
	IsMapLike(d Descriptor) bool

	// IsCollectionLike reports whether d denotes a sequence or
	// collection-like type.
	IsCollectionLike(d Descriptor) bool

	// IsEnumLike reports whether d denotes an enumeration-like type.
	IsEnumLike(d Descriptor) bool

	// SimpleName returns the unqualified name of d for diagnostics.
	SimpleName(d Descriptor) string
}

// NewReflectIntrospector returns the default Introspector backed by the
// reflect package.
//
// Raw forms: a parameterized descriptor reduces to its base; an instantiated
// generic type (reflect name "pkg.List[string]") reduces to Named("pkg.List");
// a pointer type reduces to its element type.
//
// Classification: map kinds are map-like; slice and array kinds are
// collection-like, except []byte, which conventionally carries its own
// encoding; a named integer type implementing fmt.Stringer is enum-like.
// Parameterized descriptors classify by their base.
func NewReflectIntrospector() Introspector {
	return reflectIntrospector{}
}

type reflectIntrospector struct{}

var _ Introspector = reflectIntrospector{}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func (reflectIntrospector) RawForm(d Descriptor) (Descriptor, bool) {
	if base, ok := d.Base(); ok {
		return base, true
	}
	rt, ok := d.GoType()
	if !ok {
		return d, false
	}
	if rt.Kind() == reflect.Pointer {
		return TypeOf(rt.Elem()), true
	}
	// Only named generic instantiations carry type arguments in their name;
	// unnamed composites like map[string]int have no raw form. The stripped
	// base comes from String() so it stays package-qualified.
	if strings.IndexByte(rt.Name(), '[') >= 0 {
		return Named(stripTypeParams(rt.String())), true
	}
	return d, false
}

func (in reflectIntrospector) IsMapLike(d Descriptor) bool {
	if d == Maps {
		return true
	}
	if base, ok := d.Base(); ok {
		return in.IsMapLike(base)
	}
	rt, ok := d.GoType()
	return ok && rt.Kind() == reflect.Map
}

func (in reflectIntrospector) IsCollectionLike(d Descriptor) bool {
	if d == Collections {
		return true
	}
	if base, ok := d.Base(); ok {
		return in.IsCollectionLike(base)
	}
	rt, ok := d.GoType()
	if !ok {
		return false
	}
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		return rt.Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

func (in reflectIntrospector) IsEnumLike(d Descriptor) bool {
	if d == Enums {
		return true
	}
	if base, ok := d.Base(); ok {
		return in.IsEnumLike(base)
	}
	rt, ok := d.GoType()
	if !ok || rt.Name() == "" {
		return false
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rt.Implements(stringerType)
	default:
		return false
	}
}

func (in reflectIntrospector) SimpleName(d Descriptor) string {
	if d.IsZero() {
		return "<none>"
	}
	if d.IsCategory() {
		return d.node.category
	}
	if base, ok := d.Base(); ok {
		return in.SimpleName(base)
	}
	if rt, ok := d.GoType(); ok {
		if name := rt.Name(); name != "" {
			return stripTypeParams(name)
		}
		return rt.String()
	}
	// Named raw base: unqualify and strip any instantiation suffix.
	name := stripTypeParams(strings.TrimPrefix(d.Key(), "raw:"))
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// stripTypeParams removes a generic instantiation suffix: "List[string]" -> "List".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
