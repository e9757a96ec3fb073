package codec

import "testing"

func TestScanBasic(t *testing.T) {
	text := "a: 1\nb:\n  c: 2\n"
	lines, blanks, err := scan(text, DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(blanks) != 1 || blanks[0].LineNumber != 4 {
		t.Errorf("expected only the empty line 4 after the trailing newline as blank, got %+v", blanks)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[2].Depth != 1 {
		t.Errorf("expected nested line at depth 1, got %d", lines[2].Depth)
	}
}

func TestScanSkipsBlankLines(t *testing.T) {
	text := "a: 1\n\nb: 2\n"
	lines, blanks, err := scan(text, DefaultDecodeOptions())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("expected 2 non-blank lines, got %d", len(lines))
	}
	if len(blanks) != 2 || blanks[0].LineNumber != 2 || blanks[1].LineNumber != 4 {
		t.Errorf("expected blanks at line 2 and at line 4 after the trailing newline, got %+v", blanks)
	}
}

func TestScanRejectsLeadingTabInStrictMode(t *testing.T) {
	text := "a:\n\tb: 1\n"
	_, _, err := scan(text, DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected an indentation error for a leading tab")
	}
	if _, ok := err.(*IndentationError); !ok {
		t.Errorf("expected *IndentationError, got %T", err)
	}
}

func TestScanRejectsUnalignedIndentInStrictMode(t *testing.T) {
	text := "a:\n   b: 1\n"
	_, _, err := scan(text, DefaultDecodeOptions())
	if err == nil {
		t.Fatal("expected an indentation error for a 3-space indent under a 2-space step")
	}
}

func TestScanTolerantModeAllowsUnalignedIndent(t *testing.T) {
	opts := DefaultDecodeOptions()
	opts.Strict = false
	_, _, err := scan("a:\n   b: 1\n", opts)
	if err != nil {
		t.Errorf("expected non-strict mode to tolerate unaligned indent, got %v", err)
	}
}
