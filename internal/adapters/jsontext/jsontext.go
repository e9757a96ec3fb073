// Package jsontext shortcuts a JSON-text <-> TOON-text conversion through
// encoding/json, for callers holding raw JSON bytes rather than a typed
// Go value (the shape the "toon convert" CLI command needs).
package jsontext

import (
	"encoding/json"

	"github.com/madstone-tech/toon/internal/adapters/typed"
	"github.com/madstone-tech/toon/internal/codec"
)

// FromJSONText parses JSON text and renders it as TOON text.
func FromJSONText(data []byte, opts ...codec.EncoderOption) (string, error) {
	var host any
	if err := json.Unmarshal(data, &host); err != nil {
		return "", err
	}
	encOpts := codec.BuildEncodeOptions(opts...)
	v, err := codec.Normalize(host, encOpts)
	if err != nil {
		return "", err
	}
	return codec.Encode(v, encOpts)
}

// ToJSONText parses TOON text and renders it as JSON text.
func ToJSONText(text string, opts ...codec.DecoderOption) ([]byte, error) {
	v, err := codec.Decode(text, codec.BuildDecodeOptions(opts...))
	if err != nil {
		return nil, err
	}
	return json.Marshal(typed.ToHost(v))
}
