package codec

import (
	"strconv"
	"strings"
)

// reservedLiterals are the bare tokens that always parse as a primitive
// rather than a string; a string equal to one of these must be quoted.
var reservedLiterals = map[string]bool{
	"null":  true,
	"true":  true,
	"false": true,
}

// specialChars must force quoting wherever they appear in a bare token,
// independent of which delimiter is active, per SPEC_FULL.md §4.1.
const specialChars = "\",|\t:[]{}#"

// needsQuoting reports whether s must be wrapped in double quotes when
// emitted as a bare string or object key.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if reservedLiterals[s] {
		return true
	}
	if looksLikeNumber(s) {
		return true
	}
	for _, r := range s {
		if r < 0x20 {
			return true
		}
		if strings.ContainsRune(specialChars, r) {
			return true
		}
	}
	return false
}

// looksLikeNumber reports whether s would be reparsed as a number if left
// bare, forcing quoting to preserve its identity as a string.
func looksLikeNumber(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := parseInt64(s); ok {
		return true
	}
	if _, ok := parseFloat64(s); ok {
		return true
	}
	return false
}

// quoteString wraps s in double quotes, applying the five-escape alphabet.
// Encoding only ever produces \", \\, \n, \r, \t.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// encodeString renders s as a TOON string token, quoting only if required.
func encodeString(s string) string {
	if needsQuoting(s) {
		return quoteString(s)
	}
	return s
}

// encodeKey renders an object key or field name, quoting it if it contains
// a colon, bracket, brace, whitespace, or any other character that would
// otherwise force quoting.
func encodeKey(key string) string {
	if keyNeedsQuoting(key) {
		return quoteString(key)
	}
	return key
}

func keyNeedsQuoting(key string) bool {
	if key == "" {
		return true
	}
	for _, r := range key {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return true
		}
	}
	return needsQuoting(key)
}

// unquote removes the surrounding double quotes from a quoted token and
// resolves the five-escape alphabet. Any other backslash sequence is left
// literal (backslash kept, following character kept), per SPEC_FULL.md
// §4.1. The caller guarantees raw begins and ends with an unescaped `"`.
func unquote(raw string) string {
	inner := raw[1 : len(raw)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i == len(inner)-1 {
			b.WriteByte(c)
			continue
		}
		next := inner[i+1]
		switch next {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}

// parseInt64 attempts to parse s as a signed 64-bit base-10 integer using
// a fixed, locale-independent grammar; thousands separators are rejected
// because strconv.ParseInt already rejects them.
func parseInt64(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseFloat64 attempts to parse s as a 64-bit float, accepting e/E
// exponents, an optional sign, and a decimal point.
func parseFloat64(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	switch s {
	case "inf", "+inf", "-inf", "Inf", "+Inf", "-Inf",
		"infinity", "+infinity", "-infinity", "Infinity", "+Infinity", "-Infinity",
		"nan", "NaN", "+nan", "-nan":
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parsePrimitiveToken classifies an unquoted token per SPEC_FULL.md §4.1:
// null/true/false literals, then signed 64-bit integer, then float,
// otherwise a bare string.
func parsePrimitiveToken(tok string) Value {
	switch tok {
	case "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if n, ok := parseInt64(tok); ok {
		return Int(n)
	}
	if f, ok := parseFloat64(tok); ok {
		return Float(f)
	}
	return Str(tok)
}

// formatPrimitive renders a primitive Value as the token that would be
// emitted on an encode pass: booleans as true/false, null as null,
// integers in decimal, floats with enough digits to round-trip, and
// strings via the quoting rule.
func formatPrimitive(v Value) (string, error) {
	switch v.Kind {
	case KindNull:
		return "null", nil
	case KindBool:
		if v.BoolValue() {
			return "true", nil
		}
		return "false", nil
	case KindInt:
		return strconv.FormatInt(v.IntValue(), 10), nil
	case KindFloat:
		return formatFloat(v.FloatValue()), nil
	case KindString:
		return encodeString(v.StrValue()), nil
	default:
		return "", &InvalidInputError{Reason: "formatPrimitive called on a non-primitive value"}
	}
}

// formatFloat renders f with the shortest decimal representation that
// round-trips exactly, using exponent notation for large or small
// exponents ('g' format).
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
