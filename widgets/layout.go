package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Ratios, when present, must carry one
// weight per widget; otherwise the height is split evenly.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gaps := max(0, v.Spacing) * (len(v.Widgets) - 1)
	rows := apportion(max(1, height-gaps), len(v.Widgets), v.Ratios)
	sep := "\n" + strings.Repeat("\n", max(0, v.Spacing))
	parts := make([]string, len(v.Widgets))
	for i, w := range v.Widgets {
		parts[i] = w.Render(width, max(1, rows[i]))
	}
	return strings.Join(parts, sep)
}

// HStack places widgets side by side, each column padded to its allotted
// width so rows stay aligned even when a widget renders short lines.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gaps := max(0, h.Gap) * (len(h.Widgets) - 1)
	cols := apportion(max(1, width-gaps), len(h.Widgets), h.Ratios)

	cells := make([][]string, len(h.Widgets))
	rows := 0
	for i, w := range h.Widgets {
		cells[i] = strings.Split(w.Render(max(1, cols[i]), height), "\n")
		rows = max(rows, len(cells[i]))
	}

	gap := strings.Repeat(" ", max(0, h.Gap))
	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for i := range cells {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if r < len(cells[i]) {
				cell = cells[i][r]
			}
			b.WriteString(padTo(cell, cols[i]))
		}
	}
	return b.String()
}

// apportion divides total cells among n slots by weight, handing leftover
// cells to the leading slots so the sum always lands exactly on total.
func apportion(total, n int, weights []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(weights) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	var sum float64
	for _, w := range weights {
		if w <= 0 {
			w = 1
		}
		sum += w
	}
	assigned := 0
	for i, w := range weights {
		if w <= 0 {
			w = 1
		}
		out[i] = int(w / sum * float64(total))
		assigned += out[i]
	}
	for i := 0; assigned < total; i = (i + 1) % n {
		out[i]++
		assigned++
	}
	return out
}

// padTo truncates or right-pads a styled line to exactly width cells.
func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
