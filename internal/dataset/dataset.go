// Package dataset loads remote files into the two shapes the chat surface
// works with: ordered tabular rows or an arbitrary decoded JSON value.
package dataset

// Row maps column names to cell values for one record. Values stay strings;
// no type coercion happens at parse time.
type Row map[string]string

// Table is an ordered tabular dataset. Columns preserves header order and
// every Row carries exactly that key set.
type Table struct {
	Columns []string
	Rows    []Row
}

// Dataset is the loaded form of a remote file: Table for delimited sources,
// Structured for JSON sources. Exactly one side is set after a load.
type Dataset struct {
	Table      *Table
	Structured any
}

// IsTabular reports whether the dataset is a non-empty table.
func (d Dataset) IsTabular() bool {
	return d.Table != nil && len(d.Table.Rows) > 0
}
