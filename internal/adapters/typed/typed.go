// Package typed bridges the codec's Value tree to arbitrary Go types via
// mapstructure, the way toon.Unmarshal is built on top of toon.Decode.
package typed

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/madstone-tech/toon/internal/codec"
)

// Unmarshal decodes data as TOON text and maps the result onto target (a
// pointer to a struct, map, or slice), preferring `toon` struct tags the
// way codec.Normalize does on encode.
func Unmarshal(data []byte, target any, opts ...codec.DecoderOption) error {
	v, err := codec.Decode(string(data), codec.BuildDecodeOptions(opts...))
	if err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toon",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(ToHost(v))
}

// ToHost converts a Value tree into plain Go values (map[string]any,
// []any, and primitives), the shape mapstructure and encoding/json both
// expect as decode input.
func ToHost(v codec.Value) any {
	switch v.Kind {
	case codec.KindNull:
		return nil
	case codec.KindBool:
		return v.BoolValue()
	case codec.KindInt:
		return v.IntValue()
	case codec.KindFloat:
		return v.FloatValue()
	case codec.KindString:
		return v.StrValue()
	case codec.KindArray:
		items := v.ArrayValue()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToHost(item)
		}
		return out
	case codec.KindObject:
		obj := v.ObjectValue()
		out := make(map[string]any, obj.Len())
		for _, f := range obj.Fields {
			out[f.Key] = ToHost(f.Value)
		}
		return out
	default:
		return nil
	}
}
