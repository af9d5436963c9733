package dataset

import (
	"reflect"
	"testing"
)

func TestParseDelimited_WellFormed(t *testing.T) {
	table := ParseDelimited("name,age\nalice,30\nbob,25\n", ",")
	if !reflect.DeepEqual(table.Columns, []string{"name", "age"}) {
		t.Fatalf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d", len(table.Rows))
	}
	want := Row{"name": "alice", "age": "30"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Fatalf("row[0] = %v", table.Rows[0])
	}
}

func TestParseDelimited_DropsMismatchedLines(t *testing.T) {
	table := ParseDelimited("a,b\n1,2,3\n4,5", ",")
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	want := Row{"a": "4", "b": "5"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Fatalf("row = %v", table.Rows[0])
	}
}

func TestParseDelimited_TrimsAndUnquotes(t *testing.T) {
	table := ParseDelimited(`"name" , "city"`+"\n"+` "alice" , berlin `, ",")
	if !reflect.DeepEqual(table.Columns, []string{"name", "city"}) {
		t.Fatalf("columns = %v", table.Columns)
	}
	want := Row{"name": "alice", "city": "berlin"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Fatalf("row = %v", table.Rows[0])
	}
}

func TestParseDelimited_KeepsNumericCellsAsText(t *testing.T) {
	table := ParseDelimited("x\n007", ",")
	if table.Rows[0]["x"] != "007" {
		t.Fatalf("cell = %q, want string 007", table.Rows[0]["x"])
	}
}

func TestParseDelimited_EmptyInput(t *testing.T) {
	table := ParseDelimited("   \n  ", ",")
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestParseDelimited_CustomDelimiter(t *testing.T) {
	table := ParseDelimited("a;b\n1;2", ";")
	want := Row{"a": "1", "b": "2"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Fatalf("row = %v", table.Rows[0])
	}
}

func TestParseDelimited_CRLF(t *testing.T) {
	table := ParseDelimited("a,b\r\n1,2\r\n", ",")
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d", len(table.Rows))
	}
	if table.Rows[0]["b"] != "2" {
		t.Fatalf("row = %v", table.Rows[0])
	}
}
