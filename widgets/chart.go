package widgets

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	chartColorLine  = lipgloss.Color("#fab387")
	chartColorAxis  = lipgloss.Color("#585b70")
	chartColorLabel = lipgloss.Color("#7f849c")
	chartColorEmpty = lipgloss.Color("#585b70")
	chartColorValue = lipgloss.Color("#cdd6f4")
)

type TimePoint struct {
	Time  time.Time
	Value float64
}

// TimeSeriesChart draws one daily series as a braille line chart.
type TimeSeriesChart struct {
	Points []TimePoint
	Color  lipgloss.Color
}

func (c TimeSeriesChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Points) == 0 {
		return "(no data)"
	}
	color := c.Color
	if color == "" {
		color = chartColorLine
	}

	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for _, p := range c.Points {
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	pad := (maxV - minV) * 0.1
	if pad == 0 {
		pad = 1
	}

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(color))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(chartColorAxis)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(chartColorLabel)
	start := c.Points[0].Time
	end := c.Points[len(c.Points)-1].Time
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(minV-pad, maxV+pad)
	chart.SetViewYRange(minV-pad, maxV+pad)
	// Sparse x labels: Mondays only to keep the axis readable.
	chart.Model.XLabelFormatter = linechart.LabelFormatter(func(_ int, v float64) string {
		t := time.Unix(int64(v), 0).UTC()
		if t.Weekday() != time.Monday {
			return ""
		}
		return t.Format("01/02")
	})
	for _, p := range c.Points {
		chart.Push(tslc.TimePoint{Time: p.Time, Value: p.Value})
	}
	chart.DrawBraille()
	return chart.View()
}

// BarPoint is a single vertical bar. An empty Label leaves the slot under
// the bar blank, which keeps dense charts readable when the caller only
// labels every nth point.
type BarPoint struct {
	Label string
	Value float64
}

// BarChart draws one vertical bar per point. Column sizing comes from the
// underlying chart, so the caller only decides which points carry labels.
type BarChart struct {
	Points []BarPoint
	Color  lipgloss.Color
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Points) == 0 {
		return "(no data)"
	}
	color := c.Color
	if color == "" {
		color = chartColorLine
	}
	barStyle := lipgloss.NewStyle().Foreground(color)
	data := make([]barchart.BarData, 0, len(c.Points))
	for _, p := range c.Points {
		data = append(data, barchart.BarData{
			Label: p.Label,
			Values: []barchart.BarValue{
				{Name: p.Label, Value: p.Value, Style: barStyle},
			},
		})
	}
	bc := barchart.New(width, height)
	bc.PushAll(data)
	bc.Draw()
	return bc.View()
}

type BreakdownRow struct {
	Label   string
	Value   float64
	Display string
	Color   lipgloss.Color
}

// BarBreakdown draws one horizontal bar per row, scaled to the largest value.
type BarBreakdown struct {
	Rows []BreakdownRow
}

func (b BarBreakdown) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(b.Rows) == 0 {
		return "(no data)"
	}
	maxV := 0.0
	labelW := 0
	valueW := 0
	for _, r := range b.Rows {
		if r.Value > maxV {
			maxV = r.Value
		}
		if w := ansi.StringWidth(r.Label); w > labelW {
			labelW = w
		}
		if w := ansi.StringWidth(b.display(r)); w > valueW {
			valueW = w
		}
	}
	if maxV <= 0 {
		maxV = 1
	}
	if labelW > 14 {
		labelW = 14
	}
	barW := width - labelW - valueW - 3
	if barW < 3 {
		barW = 3
	}

	lines := make([]string, 0, len(b.Rows))
	for _, r := range b.Rows {
		if len(lines) >= height {
			break
		}
		color := r.Color
		if color == "" {
			color = chartColorLine
		}
		filled := int(math.Round(float64(barW) * r.Value / maxV))
		if filled < 1 && r.Value > 0 {
			filled = 1
		}
		if filled > barW {
			filled = barW
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(chartColorEmpty).Render(strings.Repeat("░", barW-filled))
		label := padTo(r.Label, labelW)
		value := lipgloss.NewStyle().Foreground(chartColorValue).Render(b.display(r))
		lines = append(lines, label+" "+bar+" "+value)
	}
	return strings.Join(lines, "\n")
}

func (b BarBreakdown) display(r BreakdownRow) string {
	if r.Display != "" {
		return r.Display
	}
	return fmt.Sprintf("%.1f", r.Value)
}

// Sparkline is a compact value strip for summary panes.
type Sparkline struct {
	Values []float64
}

func (s Sparkline) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(s.Values) == 0 {
		return ""
	}
	sl := sparkline.New(width, height)
	for _, v := range s.Values {
		sl.Push(v)
	}
	sl.Draw()
	return sl.View()
}
