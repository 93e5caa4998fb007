package typemap

import (
	"reflect"
	"strings"
	"sync"
)

// Descriptor is the structural identity of a type. Two descriptors compare
// equal with == exactly when their structural representations are equal, so
// Descriptor works directly as a map key.
//
// A descriptor is one of:
//
//   - a Go type, built with TypeOf, TypeFor, or TypeOfValue
//   - a named raw base with no runtime type, built with Named (the erased
//     form of a generic type, e.g. "pkg.List")
//   - a parameterized type, built with Parameterized (a base plus ordered
//     type arguments)
//   - one of the reserved category descriptors Maps, Collections, or Enums
//
// The zero Descriptor is valid but denotes no type; IsZero reports it.
type Descriptor struct {
	node *descriptorNode
}

type descriptorNode struct {
	key      string
	rtype    reflect.Type
	base     Descriptor
	args     []Descriptor
	category string
}

// descriptors interns nodes by structural key so that == on Descriptor
// follows structural equality.
var descriptors sync.Map // map[string]*descriptorNode

func intern(n *descriptorNode) Descriptor {
	if existing, ok := descriptors.Load(n.key); ok {
		return Descriptor{node: existing.(*descriptorNode)}
	}
	actual, _ := descriptors.LoadOrStore(n.key, n)
	return Descriptor{node: actual.(*descriptorNode)}
}

// Category descriptors represent structural families rather than concrete
// types. Handlers registered against them act as fallbacks for every type
// the Introspector classifies into that family.
var (
	// Maps matches map-like types.
	Maps = newCategory("map")
	// Collections matches sequence and collection-like types.
	Collections = newCategory("collection")
	// Enums matches enumeration-like types.
	Enums = newCategory("enum")
)

func newCategory(name string) Descriptor {
	return intern(&descriptorNode{key: "category:" + name, category: name})
}

// TypeOf returns the descriptor for a runtime type.
// A nil type yields the zero descriptor.
func TypeOf(rt reflect.Type) Descriptor {
	if rt == nil {
		return Descriptor{}
	}
	return intern(&descriptorNode{key: "type:" + rt.String(), rtype: rt})
}

// TypeFor returns the descriptor for the type T.
func TypeFor[T any]() Descriptor {
	return TypeOf(reflect.TypeFor[T]())
}

// TypeOfValue returns the descriptor for v's dynamic type.
func TypeOfValue(v any) Descriptor {
	if v == nil {
		return Descriptor{}
	}
	return TypeOf(reflect.TypeOf(v))
}

// Named returns the descriptor for a raw generic base identified only by
// name, e.g. Named("pkg.List") for the erased form of pkg.List[T]. Names
// should be package-qualified the way reflect.Type.String renders them.
func Named(name string) Descriptor {
	if name == "" {
		return Descriptor{}
	}
	return intern(&descriptorNode{key: "raw:" + name})
}

// Parameterized returns the descriptor for base instantiated with the given
// type arguments, e.g. Parameterized(Named("pkg.List"), TypeFor[string]()).
func Parameterized(base Descriptor, args ...Descriptor) Descriptor {
	if base.IsZero() {
		return Descriptor{}
	}
	var sb strings.Builder
	sb.WriteString(base.Key())
	sb.WriteByte('[')
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(a.Key())
	}
	sb.WriteByte(']')

	held := make([]Descriptor, len(args))
	copy(held, args)
	return intern(&descriptorNode{key: sb.String(), base: base, args: held})
}

// IsZero reports whether d is the zero descriptor.
func (d Descriptor) IsZero() bool {
	return d.node == nil
}

// Key returns the canonical structural key. Keys are unique per structure
// within a process and suitable for sorting; they are not a stable
// serialization format.
func (d Descriptor) Key() string {
	if d.node == nil {
		return ""
	}
	return d.node.key
}

// GoType returns the runtime type backing d, if any.
func (d Descriptor) GoType() (reflect.Type, bool) {
	if d.node == nil || d.node.rtype == nil {
		return nil, false
	}
	return d.node.rtype, true
}

// Base returns the declared base of a parameterized descriptor.
func (d Descriptor) Base() (Descriptor, bool) {
	if d.node == nil || d.node.base.IsZero() {
		return Descriptor{}, false
	}
	return d.node.base, true
}

// Args returns the ordered type arguments of a parameterized descriptor.
func (d Descriptor) Args() []Descriptor {
	if d.node == nil || len(d.node.args) == 0 {
		return nil
	}
	out := make([]Descriptor, len(d.node.args))
	copy(out, d.node.args)
	return out
}

// IsCategory reports whether d is one of the reserved category descriptors.
func (d Descriptor) IsCategory() bool {
	return d.node != nil && d.node.category != ""
}

// String returns the canonical key. Use Introspector.SimpleName for
// human-oriented rendering.
func (d Descriptor) String() string {
	if d.node == nil {
		return "<none>"
	}
	return d.node.key
}
