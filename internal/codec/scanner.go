package codec

import "strings"

// ParsedLine is one non-blank line of a TOON document after indentation
// has been measured, per SPEC_FULL.md §4.4.
type ParsedLine struct {
	Raw        string
	Content    string
	Indent     int
	Depth      int
	LineNumber int // 1-based
}

// BlankLineInfo records a blank or whitespace-only line the scanner
// skipped; strict-mode validation uses these to reject blank lines inside
// the row block of a tabular or list array.
type BlankLineInfo struct {
	LineNumber int
	Indent     int
	Depth      int
}

// scan splits text on '\n' and produces the ParsedLine stream plus the
// blank lines encountered, per SPEC_FULL.md §4.4. It does not strip a
// trailing '\r'; CRLF-tolerant callers should normalize before scanning.
func scan(text string, opts DecodeOptions) ([]ParsedLine, []BlankLineInfo, error) {
	rawLines := strings.Split(text, "\n")
	lines := make([]ParsedLine, 0, len(rawLines))
	blanks := make([]BlankLineInfo, 0)

	for i, raw := range rawLines {
		lineNumber := i + 1
		indent := countLeadingSpaces(raw)
		content := raw[indent:]

		if isBlank(content) {
			blanks = append(blanks, BlankLineInfo{
				LineNumber: lineNumber,
				Indent:     indent,
				Depth:      indent / opts.Indent,
			})
			continue
		}

		if opts.Strict {
			if hasLeadingTab(raw) {
				return nil, nil, &IndentationError{Line: lineNumber, Message: "leading whitespace contains a tab"}
			}
			if indent%opts.Indent != 0 {
				return nil, nil, &IndentationError{
					Line:    lineNumber,
					Message: "indent is not a multiple of the configured indent step",
				}
			}
		}

		lines = append(lines, ParsedLine{
			Raw:        raw,
			Content:    content,
			Indent:     indent,
			Depth:      indent / opts.Indent,
			LineNumber: lineNumber,
		})
	}

	return lines, blanks, nil
}

func countLeadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

func hasLeadingTab(raw string) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' {
			continue
		}
		if raw[i] == '\t' {
			return true
		}
		return false
	}
	return false
}

func isBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
