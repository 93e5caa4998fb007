// Package typemap maps type descriptors to handler values with hierarchical
// fallback lookup.
//
// A serialization framework needs to answer one question constantly: given a
// value's declared or runtime type, which handler converts it? An exact
// registration should always be found first, but when none exists the search
// must fall back through a well-defined hierarchy (parameterized type to raw
// base, then to a structural category such as map, collection, or enum)
// without ambiguity or unbounded recursion. Registry implements that
// resolution over an injected Introspector, so the lookup logic itself stays
// independent of any particular reflection library.
//
// # Descriptors
//
// Types are identified by Descriptor values, which are interned so that ==
// follows structural equality:
//
//	typemap.TypeFor[time.Time]()
//	typemap.TypeOfValue(v)
//	typemap.Named("pkg.List")
//	typemap.Parameterized(typemap.Named("pkg.List"), typemap.TypeFor[string]())
//
// The reserved descriptors Maps, Collections, and Enums stand for structural
// families; handlers registered against them act as category fallbacks.
//
// # Basic Usage
//
//	reg := typemap.New[Handler]()
//	_ = reg.Register(typemap.TypeFor[time.Time](), timeHandler)
//	_ = reg.Register(typemap.Maps, mapHandler)
//	reg.Freeze()
//
//	h, ok := reg.Lookup(typemap.TypeOfValue(v))
//
// # Lookup Resolution
//
// Lookup resolves in tiers:
//
//  1. A descriptor that structurally denotes a map resolves to the Maps
//     handler; one that denotes a collection resolves to the Collections
//     handler. A missing category handler falls through to the next tiers.
//  2. Exact match on the descriptor.
//  3. Recursive resolution of the descriptor's raw/erased form, when it
//     differs. Raw-form derivation is strictly reducing, so this terminates.
//  4. For parameterized descriptors, a flat match on the declared base.
//  5. Category fallback by assignability: map, then collection, then enum.
//
// # Lifecycle
//
// A registry starts empty and mutable, is populated during framework setup,
// and may be frozen before being shared across goroutines. Freezing is
// permanent; every later mutation fails with a FrozenError. Copy produces an
// independently mutable clone regardless of the source's frozen state.
//
// # Diagnostics
//
// Re-registering a descriptor succeeds (the new handler wins) but logs a
// warning through the configured zerolog logger and emits a capitan signal.
// Lifecycle events (freeze, merge, copy) emit signals as well.
package typemap

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Option configures a Registry at construction.
type Option func(*options)

type options struct {
	introspector Introspector
	logger       zerolog.Logger
}

func defaultOptions() options {
	return options{
		introspector: NewReflectIntrospector(),
		logger:       log.Logger,
	}
}

// WithIntrospector sets the type-introspection capability used for fallback
// resolution and diagnostic rendering. The default is backed by reflect; a
// fake introspector makes the fallback tiers testable with synthetic
// descriptors.
func WithIntrospector(in Introspector) Option {
	return func(o *options) {
		if in != nil {
			o.introspector = in
		}
	}
}

// WithLogger sets the logger that receives the overwrite warning diagnostic.
// The default is the global zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
