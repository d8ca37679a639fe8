package widgets

import "github.com/charmbracelet/lipgloss"

var boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

// Box is the minimal bordered block used where the full Pane chrome
// (markers, focus colors) would be noise.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return boxStyle.
		Width(width - 2).
		Height(max(1, height-2)).
		Render("[" + b.Title + "]\n" + b.Content)
}
