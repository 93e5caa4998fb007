package typemap

import (
	"errors"
	"fmt"
)

// ErrFrozen indicates a mutation was attempted on a frozen registry.
// Use errors.Is() to check for it.
var ErrFrozen = errors.New("registry is frozen")

// FrozenError reports which operation was rejected by a frozen registry.
// Lookup misses are not errors; this is the only error kind the registry
// produces.
type FrozenError struct {
	Op string // operation that was rejected (register, register-if-absent, merge)
}

func (e *FrozenError) Error() string {
	if e.Op == "" {
		return "attempted to modify a frozen registry"
	}
	return fmt.Sprintf("%s: attempted to modify a frozen registry", e.Op)
}

func (e *FrozenError) Unwrap() error {
	return ErrFrozen
}

// newFrozenError creates a FrozenError for the given operation.
func newFrozenError(op string) error {
	return &FrozenError{Op: op}
}
