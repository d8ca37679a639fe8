package widgets

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	tbl := Table{
		Headers: []string{"Name", "Qty"},
		Rows:    [][]string{{"Paneer", "2"}, {"Corn", "10"}},
	}
	out := tbl.Render(40, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if lines[0] != "Name    Qty" {
		t.Fatalf("header row = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "─") {
		t.Fatalf("expected separator, got %q", lines[1])
	}
	if lines[2] != "Paneer  2  " {
		t.Fatalf("row = %q", lines[2])
	}
}

func TestTableTruncatesWideColumns(t *testing.T) {
	tbl := Table{
		Headers: []string{"Name"},
		Rows:    [][]string{{"a very long cell value that cannot fit"}},
	}
	out := tbl.Render(12, 10)
	for _, line := range strings.Split(out, "\n") {
		if n := len([]rune(line)); n > 12 {
			t.Fatalf("line exceeds width: %q (%d)", line, n)
		}
	}
}

func TestTableCapsRowsAtHeight(t *testing.T) {
	rows := make([][]string, 8)
	for i := range rows {
		rows[i] = []string{"r"}
	}
	tbl := Table{Headers: []string{"H"}, Rows: rows}
	out := tbl.Render(20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[4], "more rows") {
		t.Fatalf("expected hidden row marker, got %q", lines[4])
	}
}

func TestTableEmptyHeadersFallsBack(t *testing.T) {
	if got := (Table{}).Render(10, 5); got != "No data" {
		t.Fatalf("got %q", got)
	}
}
