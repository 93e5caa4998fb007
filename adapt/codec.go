package adapt

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// jsonCodec implements Codec for JSON.
type jsonCodec struct{}

// JSON returns a JSON codec.
func JSON() Codec {
	return jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// msgpackCodec implements Codec for MessagePack.
type msgpackCodec struct{}

// Msgpack returns a MessagePack codec.
func Msgpack() Codec {
	return msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// yamlCodec implements Codec for YAML.
type yamlCodec struct{}

// YAML returns a YAML codec.
func YAML() Codec {
	return yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
