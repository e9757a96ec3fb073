package codec

// IsValid reports whether text parses as a well-formed TOON document under
// opts. It discards the decoded value and any error detail, for callers
// that only need a yes/no answer (SPEC_FULL.md's validate operation).
func IsValid(text string, opts DecodeOptions) bool {
	_, err := Decode(text, opts)
	return err == nil
}
