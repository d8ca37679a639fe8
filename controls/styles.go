package controls

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	valueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	activeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	chipStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de"))
	chipCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	onStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	offStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	trackStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
	fillStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))

	chipPickedBg = lipgloss.Color("#313244")

	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")).Background(lipgloss.Color("#313244")).Padding(0, 2)
	buttonFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")).Bold(true).Padding(0, 2)
)

func renderLabel(label string, focused bool) string {
	if focused {
		return activeStyle.Render(label + ": ")
	}
	return labelStyle.Render(label + ": ")
}
