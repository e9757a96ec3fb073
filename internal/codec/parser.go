package codec

import (
	"strconv"
	"strings"
)

// TOON grammar (normative summary; SPEC_FULL.md §6 refers here):
//
//	document   := value_line (eol value_line)*
//	value_line := primitive | object_line | array_header
//	object_line:= key ":" (" " inline_value)?   // body on following deeper lines
//	array_header := key? "[" ("#")? integer (delim_suffix)? "]"
//	                ( "{" field ("," field)* "}" )?
//	                ":" (" " inline_values)?
//	delim_suffix := "|" | HT
//	inline_values:= value (current_delim value)*   // split respecting quotes
//	primitive  := "null" | "true" | "false" | number | string
//	string     := bareword | quoted
//	quoted     := '"' ( escape | not_quote )* '"'
//	escape     := '\\' ( '"' | '\\' | 'n' | 'r' | 't' )
//
// Indentation is exactly options.Indent spaces per nesting level. A list
// item is an ordinary line at the child depth whose content starts with
// "- ".

// ArrayHeader is the parser's internal representation of a recognized
// array-header line.
type ArrayHeader struct {
	Key             string
	HasKey          bool
	Length          int
	Delimiter       Delimiter // zero value means "use the context default"
	HasDelimiter    bool
	Fields          []string
	HasFields       bool
	HasLengthMarker bool
}

// stripListMarker removes a leading "- " list-item marker, if present.
func stripListMarker(content string) (rest string, isListItem bool) {
	if strings.HasPrefix(content, "- ") {
		return content[2:], true
	}
	if content == "-" {
		return "", true
	}
	return content, false
}

// tryParseHeader attempts to parse content as an array_header production.
// ok is false (with no error) when content simply isn't a header line; the
// caller then tries a different production. err is non-nil only when the
// line looks enough like a header to commit to one but is malformed.
func tryParseHeader(content string) (hdr ArrayHeader, remainder string, ok bool, err error) {
	i := 0
	n := len(content)

	if i < n && content[i] == '"' {
		end, found := findClosingQuote(content, i+1)
		if !found {
			return hdr, "", false, nil
		}
		hdr.Key = unquote(content[i : end+1])
		hdr.HasKey = true
		i = end + 1
	} else {
		j := i
		for j < n && content[j] != '[' {
			j++
		}
		if j >= n {
			return hdr, "", false, nil
		}
		if j > i {
			hdr.Key = strings.TrimSpace(content[i:j])
			hdr.HasKey = true
		}
		i = j
	}

	if i >= n || content[i] != '[' {
		return hdr, "", false, nil
	}
	i++

	if i < n && content[i] == '#' {
		hdr.HasLengthMarker = true
		i++
	}

	digitsStart := i
	for i < n && content[i] >= '0' && content[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return hdr, "", false, nil
	}
	length, convErr := strconv.Atoi(content[digitsStart:i])
	if convErr != nil || length < 0 {
		return hdr, "", false, nil
	}
	hdr.Length = length

	if i < n && (content[i] == '|' || content[i] == '\t' || content[i] == ',') {
		hdr.Delimiter = Delimiter(content[i])
		hdr.HasDelimiter = true
		i++
	}

	if i >= n || content[i] != ']' {
		return hdr, "", false, nil
	}
	i++

	if i < n && content[i] == '{' {
		closeIdx, found := findUnquotedByte(content, i+1, '}')
		if !found {
			return hdr, "", false, &SyntaxError{Message: "unterminated field list"}
		}
		raw := content[i+1 : closeIdx]
		hdr.Fields = parseFieldList(raw)
		hdr.HasFields = true
		i = closeIdx + 1
	}

	if i >= n || content[i] != ':' {
		return hdr, "", false, nil
	}
	i++

	remainder = strings.TrimPrefix(content[i:], " ")
	return hdr, remainder, true, nil
}

// parseFieldList splits raw on commas (always, independent of the data
// delimiter), honoring quotes, and unquotes each resulting field name.
func parseFieldList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := splitDelimited(raw, ',')
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = unquoteToken(p)
	}
	return fields
}

// parseKeyColon parses the key token grammar of SPEC_FULL.md §4.5 for a
// non-header object field line: a quoted key up to its matching quote, or
// a bareword up to the first unquoted colon. The colon must exist on the
// same line.
func parseKeyColon(content string) (key, remainder string, err error) {
	if content == "" {
		return "", "", &SyntaxError{Message: "empty line has no key"}
	}
	if content[0] == '"' {
		end, found := findClosingQuote(content, 1)
		if !found {
			return "", "", &SyntaxError{Message: "unterminated quoted key"}
		}
		key = unquote(content[:end+1])
		rest := content[end+1:]
		rest = strings.TrimLeft(rest, " ")
		if rest == "" || rest[0] != ':' {
			return "", "", &SyntaxError{Message: "missing colon after key"}
		}
		remainder = strings.TrimPrefix(rest[1:], " ")
		return key, remainder, nil
	}

	idx, found := findUnquotedByte(content, 0, ':')
	if !found {
		return "", "", &SyntaxError{Message: "missing colon after key"}
	}
	key = strings.TrimSpace(content[:idx])
	remainder = strings.TrimPrefix(content[idx+1:], " ")
	return key, remainder, nil
}

// parseValueToken converts a single delimited token (already trimmed of
// surrounding whitespace by the splitter) into a Value, validating quoted
// tokens are properly closed.
func parseValueToken(tok string) (Value, error) {
	if len(tok) > 0 && tok[0] == '"' {
		if len(tok) < 2 {
			return Value{}, &SyntaxError{Message: "unterminated quoted string"}
		}
		end, found := findClosingQuote(tok, 1)
		if !found {
			return Value{}, &SyntaxError{Message: "unterminated quoted string"}
		}
		if end != len(tok)-1 {
			return Value{}, &SyntaxError{Message: "extra characters after closing quote"}
		}
		return Str(unquote(tok)), nil
	}
	return parsePrimitiveToken(tok), nil
}

// unquoteToken is like parseValueToken but returns the plain string
// identity of a field name rather than a typed Value.
func unquoteToken(tok string) string {
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return unquote(tok)
	}
	return tok
}

// splitDelimited implements the delimited-value splitter state machine of
// SPEC_FULL.md §4.5: toggling inQuotes on '"', consuming the next
// character verbatim after a backslash while inside quotes, and emitting
// the trimmed accumulator on the active delimiter outside quotes.
func splitDelimited(s string, delim rune) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	var cur []rune
	inQuotes := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur = append(cur, r)
		case r == '\\' && inQuotes && i+1 < len(runes):
			cur = append(cur, r, runes[i+1])
			i++
		case r == delim && !inQuotes:
			tokens = append(tokens, strings.TrimSpace(string(cur)))
			cur = cur[:0]
		default:
			cur = append(cur, r)
		}
	}
	tokens = append(tokens, strings.TrimSpace(string(cur)))
	return tokens
}

// findClosingQuote returns the index in s of the first unescaped '"' at or
// after start, honoring backslash escapes.
func findClosingQuote(s string, start int) (int, bool) {
	for i := start; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			continue
		}
		if s[i] == '"' {
			return i, true
		}
	}
	return -1, false
}

// findUnquotedByte returns the index of the first occurrence of target in
// s at or after start that is not inside a quoted run.
func findUnquotedByte(s string, start int, target byte) (int, bool) {
	inQuotes := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == '\\' && i+1 < len(s) {
				i++
				continue
			}
			if c == '"' {
				inQuotes = false
			}
			continue
		}
		if c == '"' {
			inQuotes = true
			continue
		}
		if c == target {
			return i, true
		}
	}
	return -1, false
}
