package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter lists the key bindings live in the current scope, help-bar
// style. Bindings without keys are skipped.
func RenderFooter(m Model) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	pad := lipgloss.NewStyle().Background(bg)

	var parts []string
	for _, b := range m.keys.BindingsForScope(m.ActiveScope()) {
		if len(b.Keys) == 0 {
			continue
		}
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)).Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+pad.Render(" ")+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, pad.Render("  "))
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return fillBar(footerStyle, bg, max(1, m.width), line)
}

// RenderStatusBar shows the last status text, error-styled when the status
// came from a failure.
func RenderStatusBar(m Model) string {
	text := strings.TrimSpace(m.status)
	if text == "" {
		text = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return fillBar(style, colorSurface0, max(1, m.width), text)
}

// fillBar flattens text to one row and pads it to the full bar width so
// the background color runs edge to edge.
func fillBar(style lipgloss.Style, bg lipgloss.TerminalColor, width int, text string) string {
	row := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(row); w < width {
		row += strings.Repeat(" ", width-w)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(row)
}

// ClipHeight drops rows beyond height without padding, for pane bodies
// that manage their own bottom edge.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	rows := strings.Split(s, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// TrimToWidth truncates a single row to width, ANSI-aware.
func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}
