package adapt

import (
	"encoding/base64"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/zoobzio/typemap"
)

// identityContext adapts nothing; it lets adapters be tested in isolation.
type identityContext struct{}

func (identityContext) Adapt(v any) (any, error) { return v, nil }

func TestDefaults_Coverage(t *testing.T) {
	r := Defaults()

	for _, d := range []typemap.Descriptor{
		typemap.Maps,
		typemap.Collections,
		typemap.Enums,
		typemap.TypeFor[time.Time](),
		typemap.TypeFor[time.Duration](),
		typemap.TypeFor[[]byte](),
		typemap.TypeFor[url.URL](),
	} {
		if !r.HasExact(d) {
			t.Errorf("Defaults() missing adapter for %v", d)
		}
	}
}

func TestAdaptMap(t *testing.T) {
	got, err := adaptMap(identityContext{}, map[int]string{1: "one", 2: "two"})
	if err != nil {
		t.Fatalf("adaptMap() error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("adaptMap() returned %T, want map[string]any", got)
	}
	if m["1"] != "one" || m["2"] != "two" {
		t.Errorf("adaptMap() = %v, keys should be stringified", m)
	}

	if _, err := adaptMap(identityContext{}, "not a map"); !errors.Is(err, ErrMismatchedValue) {
		t.Errorf("adaptMap(non-map) = %v, want ErrMismatchedValue", err)
	}
}

func TestAdaptCollection(t *testing.T) {
	got, err := adaptCollection(identityContext{}, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("adaptCollection() error: %v", err)
	}
	s, ok := got.([]any)
	if !ok || len(s) != 3 || s[0] != 1 {
		t.Errorf("adaptCollection() = %v (%T), want [1 2 3]", got, got)
	}

	if _, err := adaptCollection(identityContext{}, 7); !errors.Is(err, ErrMismatchedValue) {
		t.Errorf("adaptCollection(non-slice) = %v, want ErrMismatchedValue", err)
	}
}

type phase int

func (p phase) String() string {
	if p == 0 {
		return "idle"
	}
	return "busy"
}

func TestAdaptEnum(t *testing.T) {
	got, err := adaptEnum(identityContext{}, phase(0))
	if err != nil {
		t.Fatalf("adaptEnum() error: %v", err)
	}
	if got != "idle" {
		t.Errorf("adaptEnum() = %v, want idle", got)
	}
}

func TestAdaptScalars(t *testing.T) {
	when := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	u := url.URL{Scheme: "https", Host: "example.com", Path: "/x"}

	tests := []struct {
		name    string
		adapter func(Context, any) (any, error)
		in      any
		want    any
	}{
		{"time", adaptTime, when, "2024-06-01T12:00:00Z"},
		{"duration", adaptDuration, 90 * time.Minute, "1h30m0s"},
		{"bytes", adaptBytes, []byte("hi"), base64.StdEncoding.EncodeToString([]byte("hi"))},
		{"url", adaptURL, u, "https://example.com/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.adapter(identityContext{}, tt.in)
			if err != nil {
				t.Fatalf("adapter error: %v", err)
			}
			if got != tt.want {
				t.Errorf("adapter = %v, want %v", got, tt.want)
			}

			if _, err := tt.adapter(identityContext{}, struct{}{}); !errors.Is(err, ErrMismatchedValue) {
				t.Errorf("adapter on wrong type = %v, want ErrMismatchedValue", err)
			}
		})
	}
}
