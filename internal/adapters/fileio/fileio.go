// Package fileio is a thin os.ReadFile/os.WriteFile shim around the TOON
// codec, for callers that just want a value on disk.
package fileio

import (
	"bytes"
	"os"

	"github.com/madstone-tech/toon/internal/adapters/typed"
	"github.com/madstone-tech/toon/internal/codec"
)

// Save normalizes v and writes it to path as TOON text.
func Save(path string, v any, opts ...codec.EncoderOption) error {
	encOpts := codec.BuildEncodeOptions(opts...)
	normalized, err := codec.Normalize(v, encOpts)
	if err != nil {
		return err
	}
	text, err := codec.Encode(normalized, encOpts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// Load reads path and decodes it into a plain Go value tree
// (map[string]any / []any / primitives).
func Load(path string, opts ...codec.DecoderOption) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	v, err := codec.Decode(string(data), codec.BuildDecodeOptions(opts...))
	if err != nil {
		return nil, err
	}
	return typed.ToHost(v), nil
}
