package codec

import "testing"

func TestStripListMarker(t *testing.T) {
	if rest, ok := stripListMarker("- foo"); !ok || rest != "foo" {
		t.Errorf("stripListMarker(\"- foo\") = %q, %v", rest, ok)
	}
	if rest, ok := stripListMarker("-"); !ok || rest != "" {
		t.Errorf("stripListMarker(\"-\") = %q, %v", rest, ok)
	}
	if _, ok := stripListMarker("-foo"); ok {
		t.Error("stripListMarker(\"-foo\") should not be a list item")
	}
}

func TestTryParseHeaderBasic(t *testing.T) {
	hdr, remainder, ok, err := tryParseHeader("tags[3]: a,b,c")
	if err != nil || !ok {
		t.Fatalf("tryParseHeader failed: ok=%v err=%v", ok, err)
	}
	if hdr.Key != "tags" || !hdr.HasKey || hdr.Length != 3 || remainder != "a,b,c" {
		t.Errorf("tryParseHeader() = %+v, remainder %q", hdr, remainder)
	}
}

func TestTryParseHeaderKeylessArray(t *testing.T) {
	hdr, _, ok, err := tryParseHeader("[2]: 1,2")
	if err != nil || !ok || hdr.HasKey {
		t.Fatalf("tryParseHeader(keyless) = %+v, ok=%v err=%v", hdr, ok, err)
	}
}

func TestTryParseHeaderQuotedKey(t *testing.T) {
	hdr, _, ok, err := tryParseHeader(`"a, b"[1]: 1`)
	if err != nil || !ok {
		t.Fatalf("tryParseHeader failed: ok=%v err=%v", ok, err)
	}
	if hdr.Key != "a, b" {
		t.Errorf("tryParseHeader() key = %q, want %q", hdr.Key, "a, b")
	}
}

func TestTryParseHeaderLengthMarker(t *testing.T) {
	hdr, _, ok, err := tryParseHeader("nums[#3]: 1,2,3")
	if err != nil || !ok || !hdr.HasLengthMarker || hdr.Length != 3 {
		t.Fatalf("tryParseHeader(length marker) = %+v, ok=%v err=%v", hdr, ok, err)
	}
}

func TestTryParseHeaderDelimiterSuffix(t *testing.T) {
	hdr, _, ok, err := tryParseHeader("items[3|]: a|b|c")
	if err != nil || !ok || !hdr.HasDelimiter || hdr.Delimiter != DelimiterPipe {
		t.Fatalf("tryParseHeader(pipe) = %+v, ok=%v err=%v", hdr, ok, err)
	}
}

func TestTryParseHeaderFieldList(t *testing.T) {
	hdr, remainder, ok, err := tryParseHeader("users[2]{id,name}:")
	if err != nil || !ok {
		t.Fatalf("tryParseHeader failed: ok=%v err=%v", ok, err)
	}
	if !hdr.HasFields || len(hdr.Fields) != 2 || hdr.Fields[0] != "id" || hdr.Fields[1] != "name" {
		t.Errorf("tryParseHeader() fields = %v", hdr.Fields)
	}
	if remainder != "" {
		t.Errorf("tryParseHeader() remainder = %q, want empty", remainder)
	}
}

func TestTryParseHeaderUnterminatedFieldListIsCommittedError(t *testing.T) {
	_, _, ok, err := tryParseHeader("users[2]{id,name:")
	if err == nil {
		t.Fatal("expected a committed SyntaxError for an unterminated field list")
	}
	if _, isSyntax := err.(*SyntaxError); !isSyntax {
		t.Errorf("expected *SyntaxError, got %T", err)
	}
	_ = ok
}

func TestTryParseHeaderNotAHeaderReturnsOkFalseNoError(t *testing.T) {
	_, _, ok, err := tryParseHeader("name: Alice")
	if ok || err != nil {
		t.Errorf("tryParseHeader(\"name: Alice\") = ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestTryParseHeaderFieldsAlwaysCommaSplitRegardlessOfDelimiter(t *testing.T) {
	hdr, _, ok, err := tryParseHeader("rows[1|]{a,b}:")
	if err != nil || !ok {
		t.Fatalf("tryParseHeader failed: ok=%v err=%v", ok, err)
	}
	if len(hdr.Fields) != 2 || hdr.Fields[0] != "a" || hdr.Fields[1] != "b" {
		t.Errorf("tryParseHeader() fields = %v, want [a b] split on comma despite pipe delimiter", hdr.Fields)
	}
}

func TestParseKeyColonBareword(t *testing.T) {
	key, remainder, err := parseKeyColon("name: Alice")
	if err != nil || key != "name" || remainder != "Alice" {
		t.Errorf("parseKeyColon() = %q, %q, %v", key, remainder, err)
	}
}

func TestParseKeyColonQuotedKey(t *testing.T) {
	key, remainder, err := parseKeyColon(`"a: b": 1`)
	if err != nil || key != "a: b" || remainder != "1" {
		t.Errorf("parseKeyColon() = %q, %q, %v", key, remainder, err)
	}
}

func TestParseKeyColonMissingColonIsError(t *testing.T) {
	_, _, err := parseKeyColon("name")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T (%v)", err, err)
	}
}

func TestParseKeyColonEmptyLineIsError(t *testing.T) {
	_, _, err := parseKeyColon("")
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T (%v)", err, err)
	}
}

func TestSplitDelimitedHonorsQuotes(t *testing.T) {
	got := splitDelimited(`1,"a, b",3`, ',')
	want := []string{"1", `"a, b"`, "3"}
	if len(got) != len(want) {
		t.Fatalf("splitDelimited() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitDelimited()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitDelimitedHandlesEscapedQuoteInsideQuotedToken(t *testing.T) {
	got := splitDelimited(`"a\"b",c`, ',')
	if len(got) != 2 || got[0] != `"a\"b"` || got[1] != "c" {
		t.Errorf("splitDelimited() = %v", got)
	}
}

func TestSplitDelimitedEmptyStringYieldsNil(t *testing.T) {
	if got := splitDelimited("", ','); got != nil {
		t.Errorf("splitDelimited(\"\") = %v, want nil", got)
	}
}

func TestFindClosingQuoteSkipsEscapes(t *testing.T) {
	idx, found := findClosingQuote(`a\"b"`, 0)
	if !found || idx != 4 {
		t.Errorf("findClosingQuote() = %d, %v, want 4, true", idx, found)
	}
}

func TestFindUnquotedByteSkipsQuotedColons(t *testing.T) {
	idx, found := findUnquotedByte(`"a:b":c`, 0, ':')
	if !found || idx != 5 {
		t.Errorf("findUnquotedByte() = %d, %v, want 5, true", idx, found)
	}
}
