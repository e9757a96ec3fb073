package codec

import (
	"fmt"
	"strings"
)

// InvalidInputError reports an empty or whitespace-only document, or any
// other malformed call argument that never reaches the scanner.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("toon: invalid input: %s", e.Reason)
}

// SyntaxError reports a malformed token: a missing colon after a key, an
// unterminated quoted string, extra characters after a closing quote, an
// unparseable array length, or an unterminated bracket/brace.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("toon: syntax error at line %d: %s", e.Line, e.Message)
}

// IndentationError reports a strict-mode indentation violation: a tab in
// leading whitespace, or an indent that is not a multiple of the
// configured indent step.
type IndentationError struct {
	Line    int
	Message string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("toon: indentation error at line %d: %s", e.Line, e.Message)
}

// CountMismatchError reports that a declared array length differs from the
// number of rows or items actually found. Kind identifies which emission
// shape was being decoded.
type CountMismatchError struct {
	Expected int
	Actual   int
	Kind     string // "inline", "list", or "tabular"
	Line     int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("toon: %s array at line %d declared length %d but found %d",
		e.Kind, e.Line, e.Expected, e.Actual)
}

// UnexpectedBlankLineError reports one or more blank lines found inside the
// row block of a tabular or list array in strict mode.
type UnexpectedBlankLineError struct {
	Lines []int
}

func (e *UnexpectedBlankLineError) Error() string {
	strs := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		strs[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("toon: unexpected blank line(s) inside row block: %s", strings.Join(strs, ", "))
}

// DepthExceededError reports that nesting exceeded the implementation's
// recursion cap.
type DepthExceededError struct {
	Limit int
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("toon: nesting exceeds the depth limit of %d", e.Limit)
}

// Errors collects multiple diagnostics raised while validating a single
// document (currently only used by callers that want to gather every
// strict-mode complaint instead of failing on the first one).
type Errors []error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "toon: no errors"
	}
	if len(es) == 1 {
		return es[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "toon: %d errors:\n", len(es))
	for i, err := range es {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// MaxDepth bounds recursion in both the encoder and the decoder driver, per
// SPEC_FULL.md §5.
const MaxDepth = 256
