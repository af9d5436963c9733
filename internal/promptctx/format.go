// Package promptctx renders loaded datasets into bounded text blocks for
// inclusion in a model's system instruction.
package promptctx

import (
	"encoding/json"
	"fmt"
	"strings"

	"datachat/internal/dataset"
)

// DefaultMaxRows bounds how many rows enter the prompt context by default.
const DefaultMaxRows = 50

const noData = "No data available."

// FormatForContext renders a deterministic, size-bounded summary of a tabular
// dataset: a count line, the column list, and one indexed line per shown row.
// At most maxRows rows are included, always the prefix in original order.
// Empty or non-tabular datasets yield the literal "No data available." string.
func FormatForContext(ds dataset.Dataset, maxRows int) string {
	if !ds.IsTabular() {
		return noData
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	t := ds.Table
	shown := len(t.Rows)
	if shown > maxRows {
		shown = maxRows
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "Dataset with %d rows (showing first %d):\n", len(t.Rows), shown)
	fmt.Fprintf(&buf, "Columns: %s\n", strings.Join(t.Columns, ", "))
	for i := 0; i < shown; i++ {
		fmt.Fprintf(&buf, "Row %d: %s\n", i+1, renderRow(t.Columns, t.Rows[i]))
	}
	return buf.String()
}

// renderRow serializes one row as a JSON object literal in column order.
// json.Marshal on the map would sort keys alphabetically and lose the header
// order, so fields are written by hand.
func renderRow(columns []string, row dataset.Row) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		k, _ := json.Marshal(col)
		v, _ := json.Marshal(row[col])
		b.Write(k)
		b.WriteString(": ")
		b.Write(v)
	}
	b.WriteByte('}')
	return b.String()
}
