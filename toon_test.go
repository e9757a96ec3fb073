package toon

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := Obj(Field{Key: "name", Value: Str("Alice")}, Field{Key: "age", Value: Int(30)})
	text, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !decoded.Equal(v) {
		t.Errorf("Decode(Encode(v)) = %#v, want %#v", decoded, v)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("a: 1") {
		t.Error("IsValid(\"a: 1\") = false, want true")
	}
	if IsValid("a:\n\tb: 1") {
		t.Error("IsValid with a tab indent = true, want false")
	}
}

func TestRoundTrip(t *testing.T) {
	v := Obj(Field{Key: "tags", Value: Arr(Str("a"), Str("b"))})
	got, err := RoundTrip(v, nil, nil)
	if err != nil {
		t.Fatalf("RoundTrip failed: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("RoundTrip(v) = %#v, want %#v", got, v)
	}
}

func TestMarshalNormalizesGoValues(t *testing.T) {
	type person struct {
		Name string `toon:"name"`
		Age  int    `toon:"age"`
	}
	text, err := Marshal(person{Name: "Bob", Age: 25})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := "name: Bob\nage: 25"
	if text != want {
		t.Errorf("Marshal() = %q, want %q", text, want)
	}
}

func TestMarshalStringIsAnAliasForMarshal(t *testing.T) {
	a, err := Marshal(42)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	b, err := MarshalString(42)
	if err != nil {
		t.Fatalf("MarshalString failed: %v", err)
	}
	if a != b {
		t.Errorf("MarshalString() = %q, want %q (same as Marshal)", b, a)
	}
}

func TestUnmarshalIntoStruct(t *testing.T) {
	type person struct {
		Name string `toon:"name"`
		Age  int    `toon:"age"`
	}
	var p person
	if err := UnmarshalString("name: Carol\nage: 40", &p); err != nil {
		t.Fatalf("UnmarshalString failed: %v", err)
	}
	if p.Name != "Carol" || p.Age != 40 {
		t.Errorf("Unmarshal() = %+v", p)
	}
}

func TestUnmarshalRejectsMalformedInput(t *testing.T) {
	var p struct{ Name string }
	err := UnmarshalString("name\n", &p)
	if err == nil {
		t.Fatal("expected an error mapping a bare-string document onto a struct")
	}
}

func TestEncodeDecodeErrorTypesAreReexported(t *testing.T) {
	_, err := Decode("items[3]: 1,2")
	cm, ok := err.(*CountMismatchError)
	if !ok {
		t.Fatalf("expected *CountMismatchError, got %T", err)
	}
	if cm.Kind != "inline" {
		t.Errorf("CountMismatchError.Kind = %q, want %q", cm.Kind, "inline")
	}
}
