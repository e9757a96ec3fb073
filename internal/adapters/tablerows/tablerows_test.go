package tablerows

import (
	"testing"

	"github.com/madstone-tech/toon/internal/codec"
)

func TestFromRowsKeepsColumnOrder(t *testing.T) {
	out := FromRows([]string{"id", "name"}, [][]any{
		{1, "Alice"},
		{2, "Bob"},
	})
	if len(out) != 2 {
		t.Fatalf("FromRows() returned %d rows, want 2", len(out))
	}
	first, ok := out[0].(codec.Object)
	if !ok {
		t.Fatalf("FromRows()[0] is %T, want codec.Object", out[0])
	}
	if len(first.Fields) != 2 || first.Fields[0].Key != "id" || first.Fields[1].Key != "name" {
		t.Errorf("FromRows()[0].Fields = %v", first.Keys())
	}
}

func TestFromRowsPadsShortRows(t *testing.T) {
	out := FromRows([]string{"id", "name"}, [][]any{{1}})
	row := out[0].(codec.Object)
	nameVal, ok := row.Get("name")
	if !ok || !nameVal.IsNull() {
		t.Errorf("expected a missing trailing column to normalize to null, got %#v", nameVal)
	}
}

func TestFromRowsEmptyReturnsEmptySlice(t *testing.T) {
	out := FromRows([]string{"id"}, nil)
	if len(out) != 0 {
		t.Errorf("FromRows(nil rows) = %v, want empty", out)
	}
}

func TestFromRowsNormalizesWithDefaultOptions(t *testing.T) {
	out := FromRows([]string{"n"}, [][]any{{3.0}})
	row := out[0].(codec.Object)
	v, _ := row.Get("n")
	if v.Kind != codec.KindInt || v.IntValue() != 3 {
		t.Errorf("expected an integral float cell to normalize to KindInt, got %#v", v)
	}
}
