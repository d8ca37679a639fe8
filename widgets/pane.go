package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	paneIdleBorder   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	paneSelBorder    = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	paneFocusBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	paneTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	paneContentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// Pane is the bordered region every tab composes its layout from. Border
// color and title marker track the selected/focused state set by the pane
// host.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
	Focused  bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	width = max(4, width)
	h := max(3, p.Height)
	if height > 0 {
		h = max(3, min(h, height))
	}

	border := paneIdleBorder
	marker := "  "
	switch {
	case p.Focused:
		border, marker = paneFocusBorder, "● "
	case p.Selected:
		border, marker = paneSelBorder, "▶ "
	}

	inner := width - 2
	body := inner - 2
	if body < 1 {
		body = 1
		inner = body + 2
	}

	var b strings.Builder
	b.WriteString(p.topBorder(border, marker, inner))

	side := border.Render("│")
	var content []string
	if strings.TrimSpace(p.Content) != "" {
		content = strings.Split(p.Content, "\n")
	}
	for row := 0; row < h-2; row++ {
		line := ""
		if row < len(content) {
			line = content[row]
		}
		b.WriteByte('\n')
		b.WriteString(side)
		b.WriteByte(' ')
		b.WriteString(padTo(paneContentStyle.Render(ansi.Truncate(line, body, "")), body))
		b.WriteByte(' ')
		b.WriteString(side)
	}

	b.WriteByte('\n')
	b.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}

// topBorder embeds the marker and title in the top rule, one dash in from
// the corner when room allows.
func (p Pane) topBorder(border lipgloss.Style, marker string, inner int) string {
	title := strings.TrimSpace(marker + p.Title)
	label := " " + title + " "
	if ansi.StringWidth(label) > inner {
		label = " " + ansi.Truncate(title, max(1, inner-2), "") + " "
	}
	dashes := max(0, inner-ansi.StringWidth(label))
	lead := min(1, dashes)
	return border.Render("╭"+strings.Repeat("─", lead)) +
		paneTitleStyle.Render(label) +
		border.Render(strings.Repeat("─", dashes-lead)+"╮")
}
