package typemap

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for registry events.
var (
	SignalHandlerRegistered = capitan.NewSignal("typemap.handler.registered", "Handler registered for a type")
	SignalHandlerOverridden = capitan.NewSignal("typemap.handler.overridden", "Existing type handler overwritten")
	SignalRegistryFrozen    = capitan.NewSignal("typemap.registry.frozen", "Registry made immutable")
	SignalRegistryMerged    = capitan.NewSignal("typemap.registry.merged", "Entries merged from another registry")
	SignalRegistryCopied    = capitan.NewSignal("typemap.registry.copied", "Registry cloned into a mutable copy")
)

// Keys for typed event data.
var (
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyEntryCount = capitan.NewIntKey("entry_count")
)

// emitHandlerRegistered emits an event when a handler is stored.
func emitHandlerRegistered(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalHandlerRegistered,
		KeyTypeName.Field(typeName),
	)
}

// emitHandlerOverridden emits an event when an existing handler is replaced.
func emitHandlerOverridden(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalHandlerOverridden,
		KeyTypeName.Field(typeName),
	)
}

// emitRegistryFrozen emits an event when a registry becomes immutable.
func emitRegistryFrozen(ctx context.Context, entries int) {
	capitan.Emit(ctx, SignalRegistryFrozen,
		KeyEntryCount.Field(entries),
	)
}

// emitRegistryMerged emits an event when entries are absorbed from another
// registry.
func emitRegistryMerged(ctx context.Context, absorbed int) {
	capitan.Emit(ctx, SignalRegistryMerged,
		KeyEntryCount.Field(absorbed),
	)
}

// emitRegistryCopied emits an event when a registry is cloned.
func emitRegistryCopied(ctx context.Context, entries int) {
	capitan.Emit(ctx, SignalRegistryCopied,
		KeyEntryCount.Field(entries),
	)
}
