package typemap

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Registry associates type descriptors with handler values of type T and
// resolves lookups through hierarchical fallback. The registry owns its
// internal mapping exclusively; handler values are shared with callers.
//
// All methods are safe for concurrent use. A single read-write mutex guards
// the whole instance; registration happens mostly at startup, so coarse
// locking is the right trade.
type Registry[T any] struct {
	mu           sync.RWMutex
	introspector Introspector
	logger       zerolog.Logger
	handlers     map[Descriptor]T
	frozen       bool
}

// Entry is a single (descriptor, handler) association in a registry snapshot.
type Entry[T any] struct {
	// Type is the registered descriptor.
	Type Descriptor
	// Handler is the associated handler value.
	Handler T
}

// New constructs an empty, mutable Registry.
func New[T any](opts ...Option) *Registry[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[T]{
		introspector: o.introspector,
		logger:       o.logger,
		handlers:     make(map[Descriptor]T),
	}
}

// Register inserts or overwrites the handler for d. Overwriting an existing
// registration succeeds but logs a warning identifying the overwritten type.
// Returns a FrozenError if the registry is frozen.
func (r *Registry[T]) Register(d Descriptor, handler T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register("register", d, handler)
}

// RegisterIfAbsent inserts the handler for d only when no exact registration
// exists; a present entry is left untouched with no warning.
//
// The frozen check runs before the absence check, so a frozen registry
// rejects the call even when it would have been a no-op. This strictness is
// intentional: callers holding a frozen registry should not be probing it
// with registrations at all.
func (r *Registry[T]) RegisterIfAbsent(d Descriptor, handler T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return newFrozenError("register-if-absent")
	}
	if _, exists := r.handlers[d]; exists {
		return nil
	}
	return r.register("register-if-absent", d, handler)
}

// Merge registers every entry of other whose descriptor is absent from r.
// Entries present in r keep their handlers. Iteration order is the sorted
// order of Entries, so merging is deterministic. Returns a FrozenError if r
// is frozen; other is only read.
func (r *Registry[T]) Merge(other *Registry[T]) error {
	entries := other.Entries()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return newFrozenError("merge")
	}
	absorbed := 0
	for _, e := range entries {
		if _, exists := r.handlers[e.Type]; exists {
			continue
		}
		if err := r.register("merge", e.Type, e.Handler); err != nil {
			return err
		}
		absorbed++
	}
	emitRegistryMerged(context.Background(), absorbed)
	return nil
}

// register stores a handler. Callers must hold the write lock.
func (r *Registry[T]) register(op string, d Descriptor, handler T) error {
	if r.frozen {
		return newFrozenError(op)
	}
	if _, exists := r.handlers[d]; exists {
		name := r.introspector.SimpleName(d)
		r.logger.Warn().Str("type", name).Msg("overriding existing type handler")
		emitHandlerOverridden(context.Background(), name)
	}
	r.handlers[d] = handler
	emitHandlerRegistered(context.Background(), r.introspector.SimpleName(d))
	return nil
}

// Freeze permanently rejects further mutation. Idempotent.
func (r *Registry[T]) Freeze() {
	r.mu.Lock()
	first := !r.frozen
	r.frozen = true
	entries := len(r.handlers)
	r.mu.Unlock()

	if first {
		emitRegistryFrozen(context.Background(), entries)
	}
}

// Frozen reports whether the registry has been frozen.
func (r *Registry[T]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup resolves the handler for d, falling back through the resolution
// tiers described in the package documentation. The second return value is
// false when no tier resolves; that is a normal outcome, not an error.
//
// Descriptors that structurally denote a map or collection resolve to the
// matching category handler before the exact tier, so for such descriptors a
// registered category handler shadows an exact entry.
func (r *Registry[T]) Lookup(d Descriptor) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(d)
}

// lookup resolves d under the read lock. Recursion happens only through
// strictly reducing raw forms, so depth is bounded by the descriptor's
// structure.
func (r *Registry[T]) lookup(d Descriptor) (T, bool) {
	// Structural map-ness and collection-ness win over every other tier,
	// falling through when no category handler is registered.
	if r.introspector.IsMapLike(d) {
		if h, ok := r.handlers[Maps]; ok {
			return h, true
		}
	} else if r.introspector.IsCollectionLike(d) {
		if h, ok := r.handlers[Collections]; ok {
			return h, true
		}
	}

	if h, ok := r.handlers[d]; ok {
		return h, true
	}

	if raw, reduced := r.introspector.RawForm(d); reduced {
		if h, ok := r.lookup(raw); ok {
			return h, true
		}
	}

	// Flat fallback for parameterized descriptors: the declared base looked
	// up directly in the top-level map, distinct from the recursive path.
	substituted := d
	if base, ok := d.Base(); ok {
		if h, ok := r.handlers[base]; ok {
			return h, true
		}
		substituted = base
	}

	return r.category(substituted)
}

// category resolves d against the category handlers by assignability,
// testing map, then collection, then enum.
func (r *Registry[T]) category(d Descriptor) (T, bool) {
	switch {
	case r.introspector.IsMapLike(d):
		if h, ok := r.handlers[Maps]; ok {
			return h, true
		}
	case r.introspector.IsCollectionLike(d):
		if h, ok := r.handlers[Collections]; ok {
			return h, true
		}
	case r.introspector.IsEnumLike(d):
		if h, ok := r.handlers[Enums]; ok {
			return h, true
		}
	}
	var zero T
	return zero, false
}

// HasExact reports whether the mapping contains d as a literal key, with no
// fallback.
func (r *Registry[T]) HasExact(d Descriptor) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[d]
	return ok
}

// HasAny reports whether Lookup would resolve a handler for d through any
// tier.
func (r *Registry[T]) HasAny(d Descriptor) bool {
	_, ok := r.Lookup(d)
	return ok
}

// Copy produces a new, independently mutable registry containing the same
// entries. The copy is never frozen, regardless of the source's state, and
// keeps the source's introspector and logger.
func (r *Registry[T]) Copy() *Registry[T] {
	entries := r.Entries()

	r.mu.RLock()
	c := &Registry[T]{
		introspector: r.introspector,
		logger:       r.logger,
		handlers:     make(map[Descriptor]T, len(entries)),
	}
	r.mu.RUnlock()

	for _, e := range entries {
		// The copy is fresh and unfrozen; re-insertion cannot fail.
		_ = c.Register(e.Type, e.Handler)
	}
	emitRegistryCopied(context.Background(), len(entries))
	return c
}

// Entries returns a snapshot of the mapping, sorted by descriptor key.
// Mutating the returned slice does not affect the registry.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.RLock()
	entries := make([]Entry[T], 0, len(r.handlers))
	for d, h := range r.handlers {
		entries = append(entries, Entry[T]{Type: d, Handler: h})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type.Key() < entries[j].Type.Key()
	})
	return entries
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// String renders the mapping as {type:handler,...} using simple type names.
// Best-effort debug formatting, not a stable format.
func (r *Registry[T]) String() string {
	entries := r.Entries()

	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.introspector.SimpleName(e.Type))
		sb.WriteByte(':')
		fmt.Fprintf(&sb, "%v", e.Handler)
	}
	sb.WriteByte('}')
	return sb.String()
}
