package typemap

import (
	"errors"
	"testing"
)

func TestFrozenError_Is(t *testing.T) {
	err := newFrozenError("register")

	if !errors.Is(err, ErrFrozen) {
		t.Error("FrozenError should unwrap to ErrFrozen")
	}
}

func TestFrozenError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with operation",
			err:  newFrozenError("merge"),
			want: "merge: attempted to modify a frozen registry",
		},
		{
			name: "without operation",
			err:  &FrozenError{},
			want: "attempted to modify a frozen registry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
