package jsontext

import (
	"encoding/json"
	"testing"
)

func TestFromJSONText(t *testing.T) {
	got, err := FromJSONText([]byte(`{"name":"Alice","age":30}`))
	if err != nil {
		t.Fatalf("FromJSONText failed: %v", err)
	}
	want := "name: Alice\nage: 30"
	if got != want {
		t.Errorf("FromJSONText() = %q, want %q", got, want)
	}
}

func TestFromJSONTextRejectsMalformedJSON(t *testing.T) {
	if _, err := FromJSONText([]byte(`{not json`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestToJSONText(t *testing.T) {
	got, err := ToJSONText("name: Alice\nage: 30")
	if err != nil {
		t.Fatalf("ToJSONText failed: %v", err)
	}
	var host map[string]any
	if err := json.Unmarshal(got, &host); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if host["name"] != "Alice" {
		t.Errorf("ToJSONText() name = %v, want Alice", host["name"])
	}
}

func TestRoundTripThroughBothConversions(t *testing.T) {
	original := []byte(`{"items":[1,2,3]}`)
	toonText, err := FromJSONText(original)
	if err != nil {
		t.Fatalf("FromJSONText failed: %v", err)
	}
	back, err := ToJSONText(toonText)
	if err != nil {
		t.Fatalf("ToJSONText failed: %v", err)
	}
	var want, got map[string]any
	json.Unmarshal(original, &want)
	json.Unmarshal(back, &got)
	if len(got["items"].([]any)) != len(want["items"].([]any)) {
		t.Errorf("round trip lost data: got %v, want %v", got, want)
	}
}
