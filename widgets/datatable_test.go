package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestDataTableRendersHeaderAndRows(t *testing.T) {
	d := DataTable{
		Columns: []string{"name", "age"},
		Rows:    [][]string{{"Alice", "30"}, {"Bob", "25"}},
	}
	out := ansi.Strip(d.Render(40, 10))
	if !strings.Contains(out, "name") || !strings.Contains(out, "age") {
		t.Fatalf("header missing: %q", out)
	}
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Bob") {
		t.Fatalf("rows missing: %q", out)
	}
}

func TestDataTableCapsAtHeight(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{"row"}
	}
	out := DataTable{Columns: []string{"col"}, Rows: rows}.Render(20, 6)
	if n := strings.Count(out, "\n") + 1; n > 6 {
		t.Fatalf("line count = %d, want <= 6", n)
	}
}

func TestDataTableEmptyColumnsFallsBack(t *testing.T) {
	if got := (DataTable{}).Render(10, 5); got != "No data" {
		t.Fatalf("got %q", got)
	}
}
