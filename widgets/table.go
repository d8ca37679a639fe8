package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	cols := len(t.Headers)
	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := ansi.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	shrinkToFit(widths, width-2*(cols-1))

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, renderCells(t.Headers, widths))
	lines = append(lines, strings.Repeat("─", min(width, rowWidth(widths)+2*(cols-1))))
	shown := 0
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, renderCells(row, widths))
		shown++
	}
	if hidden := len(t.Rows) - shown; hidden > 0 && len(lines) >= height && height > 0 {
		lines[len(lines)-1] = fmt.Sprintf("… %d more rows", hidden+1)
	}
	return strings.Join(lines, "\n")
}

func renderCells(cells []string, widths []int) string {
	out := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		out[i] = padTo(cell, widths[i])
	}
	return strings.Join(out, "  ")
}

// shrinkToFit trims the widest column until the row fits the budget.
func shrinkToFit(widths []int, budget int) {
	if budget < len(widths) {
		budget = len(widths)
	}
	for rowWidth(widths) > budget {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 3 {
			return
		}
		widths[widest]--
	}
}

func rowWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
