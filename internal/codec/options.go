package codec

import (
	"fmt"
	"time"
)

// Delimiter identifies the character used to separate values inside a
// tabular row or an inline array.
type Delimiter rune

const (
	// DelimiterComma is the default delimiter; it is omitted from the
	// header's bracketed length since it never needs a suffix.
	DelimiterComma Delimiter = ','
	// DelimiterPipe uses '|' to separate values.
	DelimiterPipe Delimiter = '|'
	// DelimiterTab uses a horizontal tab to separate values.
	DelimiterTab Delimiter = '\t'
)

// Rune returns the delimiter's underlying character.
func (d Delimiter) Rune() rune { return rune(d) }

func (d Delimiter) valid() bool {
	switch d {
	case DelimiterComma, DelimiterPipe, DelimiterTab:
		return true
	default:
		return false
	}
}

// DefaultIndent is the number of spaces per nesting level when an option
// does not override it.
const DefaultIndent = 2

// EncodeOptions controls how a Value tree is rendered to TOON text.
type EncodeOptions struct {
	// Indent is the number of spaces emitted per nesting level.
	Indent int
	// Delimiter separates values inside inline arrays and tabular rows.
	Delimiter Delimiter
	// LengthMarker prefixes every array's bracketed length with '#' when true.
	LengthMarker bool
	// TimeFormatter formats time.Time values encountered by the normalizer.
	// Defaults to time.RFC3339Nano.
	TimeFormatter func(time.Time) string
}

// DefaultEncodeOptions returns the Core Profile defaults: 2-space indent,
// comma delimiter, no length marker.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Indent:        DefaultIndent,
		Delimiter:     DelimiterComma,
		LengthMarker:  false,
		TimeFormatter: func(t time.Time) string { return t.Format(time.RFC3339Nano) },
	}
}

func (o EncodeOptions) normalized() (EncodeOptions, error) {
	if o.Indent <= 0 {
		o.Indent = DefaultIndent
	}
	if o.Delimiter == 0 {
		o.Delimiter = DelimiterComma
	}
	if !o.Delimiter.valid() {
		return o, &InvalidInputError{Reason: fmt.Sprintf("unsupported delimiter %q", rune(o.Delimiter))}
	}
	if o.TimeFormatter == nil {
		o.TimeFormatter = func(t time.Time) string { return t.Format(time.RFC3339Nano) }
	}
	return o, nil
}

// EncoderOption mutates an EncodeOptions value during construction.
type EncoderOption func(*EncodeOptions)

// WithIndent sets the number of spaces per indentation level.
func WithIndent(spaces int) EncoderOption {
	return func(o *EncodeOptions) { o.Indent = spaces }
}

// WithDelimiter sets the delimiter used for inline arrays and tabular rows.
func WithDelimiter(d Delimiter) EncoderOption {
	return func(o *EncodeOptions) { o.Delimiter = d }
}

// WithLengthMarker enables or disables the '#' length-marker prefix.
func WithLengthMarker(enabled bool) EncoderOption {
	return func(o *EncodeOptions) { o.LengthMarker = enabled }
}

// WithTimeFormatter overrides how time.Time values are stringified.
func WithTimeFormatter(f func(time.Time) string) EncoderOption {
	return func(o *EncodeOptions) { o.TimeFormatter = f }
}

// BuildEncodeOptions applies opts over the Core Profile defaults.
func BuildEncodeOptions(opts ...EncoderOption) EncodeOptions {
	o := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeOptions controls how TOON text is parsed back into a Value tree.
type DecodeOptions struct {
	// Indent is the expected number of spaces per nesting level.
	Indent int
	// Strict enables count-mismatch, indentation, and blank-line
	// diagnostics. Defaults to true: the intended use (LLM prompt
	// payloads) benefits from early detection of truncation.
	Strict bool
}

// DefaultDecodeOptions returns the defaults: 2-space indent, strict mode on.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Indent: DefaultIndent, Strict: true}
}

func (o DecodeOptions) normalized() DecodeOptions {
	if o.Indent <= 0 {
		o.Indent = DefaultIndent
	}
	return o
}

// DecoderOption mutates a DecodeOptions value during construction.
type DecoderOption func(*DecodeOptions)

// WithDecoderIndent sets the expected indentation step.
func WithDecoderIndent(spaces int) DecoderOption {
	return func(o *DecodeOptions) { o.Indent = spaces }
}

// WithStrictMode toggles strict-mode diagnostics.
func WithStrictMode(strict bool) DecoderOption {
	return func(o *DecodeOptions) { o.Strict = strict }
}

// BuildDecodeOptions applies opts over the defaults.
func BuildDecodeOptions(opts ...DecoderOption) DecodeOptions {
	o := DefaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
