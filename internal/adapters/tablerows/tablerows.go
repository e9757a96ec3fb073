// Package tablerows flattens relational rows — a column list plus row
// slices, the shape a database/sql scan loop naturally produces — into an
// ordered sequence of objects that codec.Normalize renders as a tabular
// TOON array.
package tablerows

import (
	"fmt"

	"github.com/madstone-tech/toon/internal/codec"
)

// FromRows builds one codec.Object per row, keyed by columns in order,
// ready to hand to codec.Normalize (which special-cases codec.Object
// directly, preserving column order in the resulting tabular block). An
// empty rows slice returns an empty slice, never a schema-only value —
// callers needing the column list with zero rows keep it separately.
func FromRows(columns []string, rows [][]any) []any {
	encOpts := codec.DefaultEncodeOptions()
	out := make([]any, len(rows))
	for i, row := range rows {
		fields := make([]codec.Field, len(columns))
		for j, col := range columns {
			var cell any
			if j < len(row) {
				cell = row[j]
			}
			fields[j] = codec.Field{Key: col, Value: normalizeCell(cell, encOpts)}
		}
		out[i] = codec.Object{Fields: fields}
	}
	return out
}

func normalizeCell(cell any, opts codec.EncodeOptions) codec.Value {
	v, err := codec.Normalize(cell, opts)
	if err != nil {
		return codec.Str(fmt.Sprintf("%v", cell))
	}
	return v
}
