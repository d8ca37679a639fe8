package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup inside a bordered card centered over base. Base
// rows stay visible around the card; splicing is ANSI-aware so styled
// backgrounds survive the cut.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)

	baseRows := canvasRows(base, width, height)
	cardRows := canvasRows(placed, width, height)
	out := make([]string, height)
	for i := range out {
		out[i] = spliceRow(baseRows[i], cardRows[i], width)
	}
	return strings.Join(out, "\n")
}

// spliceRow lays the non-blank span of over on top of under. Rows where the
// overlay is entirely blank pass the base row through untouched.
func spliceRow(under, over string, width int) string {
	lo, hi, ok := inkedSpan(over, width)
	if !ok {
		return under
	}
	left := ansi.Truncate(under, lo, "")
	mid := ansi.Truncate(cutLeft(over, lo), hi-lo, "")
	right := cutLeft(under, hi)
	return padTo(left+mid+right, width)
}

// inkedSpan finds the first and last non-space column of a row, ignoring
// escape sequences.
func inkedSpan(row string, width int) (lo, hi int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(row, width, ""))
	inked := strings.TrimRight(plain, " ")
	if inked == "" {
		return 0, 0, false
	}
	lo = len(inked) - len(strings.TrimLeft(inked, " "))
	hi = len(inked)
	if lo >= hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// cutLeft removes the leading cols cells from a styled row.
func cutLeft(row string, cols int) string {
	if cols <= 0 {
		return row
	}
	return strings.TrimPrefix(row, ansi.Truncate(row, cols, ""))
}

// canvasRows normalizes a block of text to exactly height rows of width
// cells each.
func canvasRows(s string, width, height int) []string {
	rows := strings.Split(s, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	for i := range rows {
		rows[i] = padTo(rows[i], width)
	}
	return rows
}
