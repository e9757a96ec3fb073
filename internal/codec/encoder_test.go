package codec

import (
	"strings"
	"testing"
)

func TestEncodePrimitiveRoot(t *testing.T) {
	got, err := Encode(Int(42), DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if got != "42" {
		t.Errorf("Encode(Int(42)) = %q, want %q", got, "42")
	}
}

func TestEncodeFlatObject(t *testing.T) {
	v := Obj(
		Field{Key: "name", Value: Str("Alice")},
		Field{Key: "age", Value: Int(30)},
	)
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "name: Alice\nage: 30"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeInlinePrimitiveArray(t *testing.T) {
	v := Obj(Field{Key: "tags", Value: Arr(Str("a"), Str("b"), Str("c"))})
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "tags[3]: a,b,c"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeTabularArray(t *testing.T) {
	rows := Arr(
		Obj(Field{Key: "id", Value: Int(1)}, Field{Key: "name", Value: Str("Alice")}),
		Obj(Field{Key: "id", Value: Int(2)}, Field{Key: "name", Value: Str("Bob")}),
	)
	v := Obj(Field{Key: "users", Value: rows})
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "users[2]{id,name}:\n  1,Alice\n  2,Bob"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeBulletedListOfObjects(t *testing.T) {
	rows := Arr(
		Obj(Field{Key: "id", Value: Int(1)}, Field{Key: "tags", Value: Arr(Str("a"))}),
	)
	v := Obj(Field{Key: "items", Value: rows})
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasPrefix(got, "items[1]:\n  - id: 1") {
		t.Errorf("Encode() = %q, unexpected bulleted-list rendering", got)
	}
}

func TestEncodeEmptyObjectListItem(t *testing.T) {
	v := Obj(Field{Key: "items", Value: Arr(Obj())})
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "items[1]:\n  - {}"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeLengthMarker(t *testing.T) {
	v := Obj(Field{Key: "tags", Value: Arr(Str("a"), Str("b"))})
	opts := BuildEncodeOptions(WithLengthMarker(true))
	got, err := Encode(v, opts)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "tags[#2]: a,b"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodePipeDelimiter(t *testing.T) {
	v := Obj(Field{Key: "tags", Value: Arr(Str("a"), Str("b"))})
	opts := BuildEncodeOptions(WithDelimiter(DelimiterPipe))
	got, err := Encode(v, opts)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "tags[2|]: a|b"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeQuotesValuesContainingDelimiter(t *testing.T) {
	v := Obj(Field{Key: "tags", Value: Arr(Str("a,b"), Str("c"))})
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := `tags[2]: "a,b",c`
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeObjectListItemFirstFieldNested(t *testing.T) {
	v := Obj(Field{Key: "items", Value: Arr(
		Obj(
			Field{Key: "meta", Value: Obj(Field{Key: "k", Value: Str("v")})},
			Field{Key: "id", Value: Int(1)},
		),
	)})
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := "items[1]:\n  - meta:\n    k: v\n  id: 1"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeDepthExceeded(t *testing.T) {
	var v Value = Int(0)
	for i := 0; i < MaxDepth+5; i++ {
		v = Obj(Field{Key: "n", Value: v})
	}
	_, err := Encode(v, DefaultEncodeOptions())
	if err == nil {
		t.Fatal("expected a depth-exceeded error")
	}
	if _, ok := err.(*DepthExceededError); !ok {
		t.Errorf("expected *DepthExceededError, got %T", err)
	}
}
