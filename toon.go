// Package toon implements TOON (Token-Oriented Object Notation), a
// compact, indentation-sensitive serialization format whose data model is
// isomorphic to JSON. It trades JSON's braces and repeated keys for
// 2-space indentation and, where an array holds a uniform sequence of
// flat objects, a CSV-like tabular block — cutting the token count of the
// text an LLM prompt has to carry for the same data.
//
// The package boundary mirrors the teacher's own guiding layout: the
// codec (internal/codec) knows nothing about reflection or host types
// beyond what Normalize needs, and this file is the thin public surface
// on top of it — Encode/Decode for the Value tree directly, Marshal/
// Unmarshal for arbitrary Go values.
package toon

import (
	"github.com/madstone-tech/toon/internal/adapters/typed"
	"github.com/madstone-tech/toon/internal/codec"
)

// Re-exported data model types. Callers that want to build or inspect a
// Value tree directly (rather than through Marshal/Unmarshal) use these.
type (
	Value    = codec.Value
	Kind     = codec.Kind
	Field    = codec.Field
	Object   = codec.Object
	Delimiter = codec.Delimiter
)

// Value kind constants.
const (
	KindNull   = codec.KindNull
	KindBool   = codec.KindBool
	KindInt    = codec.KindInt
	KindFloat  = codec.KindFloat
	KindString = codec.KindString
	KindArray  = codec.KindArray
	KindObject = codec.KindObject
)

// Delimiter constants.
const (
	DelimiterComma = codec.DelimiterComma
	DelimiterPipe  = codec.DelimiterPipe
	DelimiterTab   = codec.DelimiterTab
)

// Value constructors.
var (
	Null     = codec.Null
	Bool     = codec.Bool
	Int      = codec.Int
	Float    = codec.Float
	Str      = codec.Str
	Arr      = codec.Arr
	ArrSlice = codec.ArrSlice
	Obj      = codec.Obj
	ObjFrom  = codec.ObjFrom
)

// Option types and constructors.
type (
	EncodeOptions  = codec.EncodeOptions
	DecodeOptions  = codec.DecodeOptions
	EncoderOption  = codec.EncoderOption
	DecoderOption  = codec.DecoderOption
)

var (
	DefaultEncodeOptions = codec.DefaultEncodeOptions
	DefaultDecodeOptions = codec.DefaultDecodeOptions
	WithIndent           = codec.WithIndent
	WithDelimiter        = codec.WithDelimiter
	WithLengthMarker     = codec.WithLengthMarker
	WithTimeFormatter    = codec.WithTimeFormatter
	WithDecoderIndent    = codec.WithDecoderIndent
	WithStrictMode       = codec.WithStrictMode
)

// Error types. IsValid traps all of these; callers that want structured
// diagnostics type-assert against them directly.
type (
	InvalidInputError        = codec.InvalidInputError
	SyntaxError              = codec.SyntaxError
	IndentationError         = codec.IndentationError
	CountMismatchError       = codec.CountMismatchError
	UnexpectedBlankLineError = codec.UnexpectedBlankLineError
	DepthExceededError       = codec.DepthExceededError
)

// Encode renders v, an already-built Value tree, as TOON text.
func Encode(v Value, opts ...EncoderOption) (string, error) {
	return codec.Encode(v, codec.BuildEncodeOptions(opts...))
}

// Decode parses text as a TOON document and returns its Value tree.
func Decode(text string, opts ...DecoderOption) (Value, error) {
	return codec.Decode(text, codec.BuildDecodeOptions(opts...))
}

// IsValid reports whether text is a well-formed TOON document, discarding
// the decoded value and any error detail.
func IsValid(text string, opts ...DecoderOption) bool {
	return codec.IsValid(text, codec.BuildDecodeOptions(opts...))
}

// RoundTrip encodes v and immediately decodes the result, a convenience
// for callers verifying their own data survives the format (and the basis
// for this repo's round-trip property tests).
func RoundTrip(v Value, encOpts []EncoderOption, decOpts []DecoderOption) (Value, error) {
	text, err := Encode(v, encOpts...)
	if err != nil {
		return Value{}, err
	}
	return Decode(text, decOpts...)
}

// Marshal normalizes v (a struct, map, slice, or primitive — anything
// Normalize accepts) into a Value tree and renders it as TOON text.
func Marshal(v any, opts ...EncoderOption) (string, error) {
	encOpts := codec.BuildEncodeOptions(opts...)
	normalized, err := codec.Normalize(v, encOpts)
	if err != nil {
		return "", err
	}
	return codec.Encode(normalized, encOpts)
}

// MarshalString is an alias for Marshal kept for parity with the
// toon-format/toon-go public API shape this package's surface mirrors.
func MarshalString(v any, opts ...EncoderOption) (string, error) {
	return Marshal(v, opts...)
}

// Unmarshal decodes data as TOON text and maps the resulting Value tree
// onto target (a pointer to a struct, map, or slice) via the typed
// adapter's mapstructure-based decoder.
func Unmarshal(data []byte, target any, opts ...DecoderOption) error {
	return typed.Unmarshal(data, target, opts...)
}

// UnmarshalString is Unmarshal for callers already holding a string.
func UnmarshalString(data string, target any, opts ...DecoderOption) error {
	return Unmarshal([]byte(data), target, opts...)
}
