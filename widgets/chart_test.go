package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestBarBreakdownScalesToLargestValue(t *testing.T) {
	b := BarBreakdown{Rows: []BreakdownRow{
		{Label: "Mon", Value: 100},
		{Label: "Tue", Value: 50},
	}}
	out := ansi.Strip(b.Render(40, 10))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Mon") || !strings.Contains(lines[0], "█") {
		t.Fatalf("bar row malformed: %q", lines[0])
	}
	if !strings.Contains(lines[0], "100.0") {
		t.Fatalf("value missing: %q", lines[0])
	}
	full := strings.Count(lines[0], "█")
	half := strings.Count(lines[1], "█")
	if half >= full {
		t.Fatalf("smaller value should draw fewer cells (%d vs %d)", half, full)
	}
	if !strings.Contains(lines[1], "░") {
		t.Fatalf("partial bar should show empty cells")
	}
}

func TestBarBreakdownUsesDisplayOverride(t *testing.T) {
	b := BarBreakdown{Rows: []BreakdownRow{{Label: "Sales", Value: 12, Display: "12 units"}}}
	out := ansi.Strip(b.Render(40, 5))
	if !strings.Contains(out, "12 units") {
		t.Fatalf("display override missing: %q", out)
	}
}

func TestTimeSeriesChartRendersFrame(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	points := make([]TimePoint, 0, 14)
	for i := 0; i < 14; i++ {
		points = append(points, TimePoint{Time: base.AddDate(0, 0, i), Value: float64(100 + i*3)})
	}
	out := TimeSeriesChart{Points: points}.Render(40, 10)
	if out == "" {
		t.Fatalf("expected chart output")
	}
	if strings.Count(out, "\n") < 5 {
		t.Fatalf("expected multi-line chart, got %q", out)
	}
}

func TestTimeSeriesChartEmptyPoints(t *testing.T) {
	if got := (TimeSeriesChart{}).Render(40, 10); got != "(no data)" {
		t.Fatalf("got %q", got)
	}
}

func TestBarChartRendersColumns(t *testing.T) {
	points := []BarPoint{
		{Label: "1", Value: 120},
		{Label: "", Value: 80},
		{Label: "", Value: 150},
		{Label: "", Value: 60},
		{Label: "5", Value: 110},
	}
	out := ansi.Strip(BarChart{Points: points}.Render(30, 10))
	if out == "" {
		t.Fatalf("expected bar chart output")
	}
	if !strings.Contains(out, "█") {
		t.Fatalf("expected filled columns, got %q", out)
	}
	if strings.Count(out, "\n") < 5 {
		t.Fatalf("expected multi-line chart, got %q", out)
	}
}

func TestBarChartEmptyPoints(t *testing.T) {
	if got := (BarChart{}).Render(30, 10); got != "(no data)" {
		t.Fatalf("got %q", got)
	}
}

func TestSparklineRendersValues(t *testing.T) {
	out := Sparkline{Values: []float64{1, 5, 3, 9, 2}}.Render(10, 2)
	if out == "" {
		t.Fatalf("expected sparkline output")
	}
}
