package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	metricLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	metricValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	metricUpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	metricDownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
)

// Metric is a label/value card with an optional delta line.
type Metric struct {
	Label     string
	Value     string
	Delta     string
	DeltaDown bool
}

func (m Metric) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{
		padTo(metricLabelStyle.Render(m.Label), width),
		padTo(metricValueStyle.Render(m.Value), width),
	}
	if m.Delta != "" {
		arrow := "▲ "
		style := metricUpStyle
		if m.DeltaDown {
			arrow = "▼ "
			style = metricDownStyle
		}
		lines = append(lines, padTo(style.Render(arrow+m.Delta), width))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// MetricRow lays metrics out in equal columns, dashboard-card style.
type MetricRow struct {
	Metrics []Metric
	Gap     int
}

func (r MetricRow) Render(width, height int) string {
	if len(r.Metrics) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := r.Gap
	if gap <= 0 {
		gap = 2
	}
	widgets := make([]Widget, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		widgets = append(widgets, m)
	}
	return HStack{Widgets: widgets, Gap: gap}.Render(width, height)
}
