package adapt

import (
	"testing"
)

func TestCodecs_ContentType(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		want  string
	}{
		{"json", JSON(), "application/json"},
		{"msgpack", Msgpack(), "application/msgpack"},
		{"yaml", YAML(), "application/yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.codec.ContentType(); got != tt.want {
				t.Errorf("ContentType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	in := map[string]string{"name": "alice", "role": "admin"}

	for _, codec := range []Codec{JSON(), Msgpack(), YAML()} {
		t.Run(codec.ContentType(), func(t *testing.T) {
			data, err := codec.Marshal(in)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}

			out := make(map[string]string)
			if err := codec.Unmarshal(data, &out); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if len(out) != len(in) || out["name"] != "alice" || out["role"] != "admin" {
				t.Errorf("round trip = %v, want %v", out, in)
			}
		})
	}
}
