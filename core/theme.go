package core

import "github.com/charmbracelet/lipgloss"

// mocha is the subset of the Catppuccin Mocha palette the shell chrome
// actually draws with (https://catppuccin.com/palette).
var mocha = struct {
	Blue     lipgloss.Color
	Green    lipgloss.Color
	Red      lipgloss.Color
	Yellow   lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Overlay1 lipgloss.Color
	Surface2 lipgloss.Color
	Surface0 lipgloss.Color
	Mantle   lipgloss.Color
}{
	Blue:     "#89b4fa",
	Green:    "#a6e3a1",
	Red:      "#f38ba8",
	Yellow:   "#f9e2af",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Overlay1: "#7f849c",
	Surface2: "#585b70",
	Surface0: "#313244",
	Mantle:   "#181825",
}

// Semantic names the rest of the package styles against.
var (
	colorText     = mocha.Text
	colorAccent   = mocha.Blue
	colorFocus    = mocha.Green
	colorMuted    = mocha.Subtext0
	colorBorder   = mocha.Surface2
	colorTabOff   = mocha.Overlay1
	colorSuccess  = mocha.Green
	colorError    = mocha.Red
	colorWarning  = mocha.Yellow
	colorSurface0 = mocha.Surface0
	colorMantle   = mocha.Mantle
)
