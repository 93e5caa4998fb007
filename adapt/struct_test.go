package adapt

import (
	"errors"
	"testing"
)

type account struct {
	ID       string `json:"id"`
	Name     string
	Password string `json:"-"`
	balance  int
}

func TestStructAdapter(t *testing.T) {
	in := account{ID: "a1", Name: "alice", Password: "hunter2", balance: 10}

	got, err := StructAdapter().Adapt(identityContext{}, in)
	if err != nil {
		t.Fatalf("Adapt() error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Adapt() returned %T, want map[string]any", got)
	}

	if m["id"] != "a1" {
		t.Errorf(`m["id"] = %v, json tag should rename the field`, m["id"])
	}
	if m["Name"] != "alice" {
		t.Errorf(`m["Name"] = %v, untagged fields keep their names`, m["Name"])
	}
	if _, present := m["Password"]; present {
		t.Error(`json:"-" fields must be omitted`)
	}
	if _, present := m["balance"]; present {
		t.Error("unexported fields must be omitted")
	}
	if len(m) != 2 {
		t.Errorf("Adapt() emitted %d fields, want 2", len(m))
	}
}

func TestStructAdapter_PlanCaching(t *testing.T) {
	// Second adaptation goes through the cached plans.
	for i := 0; i < 2; i++ {
		if _, err := StructAdapter().Adapt(identityContext{}, account{ID: "a"}); err != nil {
			t.Fatalf("Adapt() pass %d error: %v", i, err)
		}
	}
}

func TestStructAdapter_NonStruct(t *testing.T) {
	if _, err := StructAdapter().Adapt(identityContext{}, 42); !errors.Is(err, ErrMismatchedValue) {
		t.Errorf("Adapt(non-struct) = %v, want ErrMismatchedValue", err)
	}
}
