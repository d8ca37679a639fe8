package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
)

// DataTable renders tabular data through the bubbles table model, which
// brings per-column truncation and header styling. It is a display grid,
// not an interactive cursor; panes that need row selection keep their own.
type DataTable struct {
	Columns []string
	Rows    [][]string
}

func (d DataTable) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(d.Columns) == 0 {
		return "No data"
	}
	widths := make([]int, len(d.Columns))
	for i, c := range d.Columns {
		widths[i] = ansi.StringWidth(c)
		for _, row := range d.Rows {
			if i < len(row) {
				if w := ansi.StringWidth(row[i]); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	// each cell carries one space of padding on both sides
	shrinkToFit(widths, width-2*len(d.Columns))

	cols := make([]table.Column, len(d.Columns))
	for i, c := range d.Columns {
		cols[i] = table.Column{Title: c, Width: widths[i]}
	}
	rows := make([]table.Row, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = table.Row(r)
	}

	h := len(d.Rows) + 2
	if h > height {
		h = height
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithHeight(max(2, h)))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	lines := strings.Split(t.View(), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
