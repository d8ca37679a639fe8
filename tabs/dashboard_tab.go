package tabs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuilab/core"
	"tuilab/internal/series"
	"tuilab/widgets"
)

var (
	salesColor   = lipgloss.Color("#89b4fa")
	revenueColor = lipgloss.Color("#a6e3a1")
)

// dashState caches one snapshot per calendar day. Every pane calls
// ensure before reading; the first render of the day pays for the fetch.
type dashState struct {
	series    series.Series
	fromCache bool
	err       error
	day       time.Time
	loaded    bool
}

func (s *dashState) ensure() {
	today := series.Midnight(time.Now())
	if s.loaded && s.err == nil && s.day.Equal(today) {
		return
	}
	src := activeSeries()
	if src == nil {
		s.err = errors.New("series source not ready")
		return
	}
	// Bounded so a dead redis cache cannot stall the render loop.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	snap, fromCache, err := src.Snapshot(ctx, today)
	s.day = today
	s.loaded = true
	s.series = snap
	s.fromCache = fromCache
	s.err = err
}

// dashPane carries the pane plumbing shared by every dashboard pane; the
// concrete panes embed it and add their own Update and body.
type dashPane struct {
	id        string
	title     string
	scope     string
	jump      byte
	focusable bool
	state     *dashState
	focused   bool
}

func (p *dashPane) ID() string      { return p.id }
func (p *dashPane) Title() string   { return p.title }
func (p *dashPane) Scope() string   { return p.scope }
func (p *dashPane) JumpKey() byte   { return p.jump }
func (p *dashPane) Focusable() bool { return p.focusable }
func (p *dashPane) Init() tea.Cmd   { return nil }

func (p *dashPane) OnSelect() tea.Cmd   { return nil }
func (p *dashPane) OnDeselect() tea.Cmd { return nil }
func (p *dashPane) OnFocus() tea.Cmd {
	p.focused = true
	return nil
}
func (p *dashPane) OnBlur() tea.Cmd {
	p.focused = false
	return nil
}

func (p *dashPane) frame(body string, width, height int, selected, focused bool) string {
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

type dashOverviewPane struct {
	dashPane
}

func (p *dashOverviewPane) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *dashOverviewPane) View(width, height int, selected, focused bool) string {
	p.state.ensure()
	return p.frame(p.body(max(20, width-4)), width, height, selected, focused)
}

func (p *dashOverviewPane) body(width int) string {
	if p.state.err != nil {
		return "Snapshot failed: " + p.state.err.Error()
	}
	s := p.state.series
	sales := series.Stats(s.Sales())
	revenue := series.Stats(s.Revenue())

	salesDelta, deltaDown := "", false
	if n := len(s.Points); n >= 2 {
		diff := s.Points[n-1].Sales - s.Points[n-2].Sales
		salesDelta = fmt.Sprintf("%+.0f today", diff)
		deltaDown = diff < 0
	}
	maxLabel := fmt.Sprintf("%.0f", sales.Max)
	if peak, ok := s.PeakSalesDay(); ok {
		maxLabel = fmt.Sprintf("%.0f on %s", peak.Sales, peak.Date.Format("Jan 02"))
	}
	return widgets.MetricRow{Metrics: []widgets.Metric{
		{Label: "Total sales", Value: fmt.Sprintf("%.0f", sales.Sum), Delta: salesDelta, DeltaDown: deltaDown},
		{Label: "Mean revenue", Value: formatMoney(revenue.Mean)},
		{Label: "Max sales", Value: maxLabel},
	}}.Render(width, 3)
}

type dashTrendPane struct {
	dashPane
	showRevenue bool
	lineView    bool
}

func (p *dashTrendPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "m":
		p.showRevenue = !p.showRevenue
		if p.showRevenue {
			return core.StatusCmd("Trend: revenue")
		}
		return core.StatusCmd("Trend: sales")
	case "b":
		p.lineView = !p.lineView
		if p.lineView {
			return core.StatusCmd("Trend view: line")
		}
		return core.StatusCmd("Trend view: bars")
	}
	return nil
}

func (p *dashTrendPane) View(width, height int, selected, focused bool) string {
	p.state.ensure()
	return p.frame(p.body(max(20, width-4), max(4, height-2)), width, height, selected, focused)
}

func (p *dashTrendPane) body(width, height int) string {
	if p.state.err != nil {
		return "Snapshot failed: " + p.state.err.Error()
	}
	s := p.state.series
	name, color := "Sales", salesColor
	values := s.Sales()
	if p.showRevenue {
		name, color = "Revenue", revenueColor
		values = s.Revenue()
	}
	header := fmt.Sprintf("%s, last %d days", name, len(s.Points))
	chartHeight := max(3, height-3)

	var chart string
	if p.lineView {
		points := make([]widgets.TimePoint, len(s.Points))
		for i, pt := range s.Points {
			points[i] = widgets.TimePoint{Time: pt.Date, Value: values[i]}
		}
		chart = widgets.TimeSeriesChart{Points: points, Color: color}.Render(width, chartHeight)
	} else {
		bars := make([]widgets.BarPoint, len(s.Points))
		for i, pt := range s.Points {
			label := ""
			if i%5 == 0 {
				label = pt.Date.Format("02")
			}
			bars[i] = widgets.BarPoint{Label: label, Value: values[i]}
		}
		chart = widgets.BarChart{Points: bars, Color: color}.Render(width, chartHeight)
	}
	return strings.Join([]string{header, chart, "m sales/revenue  b bars/line"}, "\n")
}

type dashWeekdayPane struct {
	dashPane
	barsView bool
}

func (p *dashWeekdayPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "w" {
		p.barsView = !p.barsView
		if p.barsView {
			return core.StatusCmd("Weekday view: bars")
		}
		return core.StatusCmd("Weekday view: table")
	}
	return nil
}

func (p *dashWeekdayPane) View(width, height int, selected, focused bool) string {
	p.state.ensure()
	return p.frame(p.body(max(20, width-4), max(4, height-2)), width, height, selected, focused)
}

func (p *dashWeekdayPane) body(width, height int) string {
	if p.state.err != nil {
		return "Snapshot failed: " + p.state.err.Error()
	}
	totals := p.state.series.ByWeekday()
	hint := "w table/bars"
	if p.barsView {
		rows := make([]widgets.BreakdownRow, len(totals))
		for i, t := range totals {
			rows[i] = widgets.BreakdownRow{
				Label:   t.Day,
				Value:   t.Sales,
				Display: fmt.Sprintf("%.0f", t.Sales),
				Color:   salesColor,
			}
		}
		return widgets.BarBreakdown{Rows: rows}.Render(width, max(3, height-2)) + "\n" + hint
	}
	rows := make([][]string, len(totals))
	for i, t := range totals {
		rows[i] = []string{t.Day, fmt.Sprintf("%.0f", t.Sales), formatMoney(t.Revenue)}
	}
	grid := widgets.DataTable{
		Columns: []string{"Day", "Sales", "Revenue"},
		Rows:    rows,
	}.Render(width, max(3, height-2))
	return grid + "\n" + hint
}

type dashExpanderPane struct {
	dashPane
	summary  string
	expanded bool
	content  func(width, height int) string
}

func (p *dashExpanderPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == " " {
		p.expanded = !p.expanded
		if p.expanded {
			return core.StatusCmd("Expanded: " + p.summary)
		}
		return core.StatusCmd("Collapsed: " + p.summary)
	}
	return nil
}

func (p *dashExpanderPane) View(width, height int, selected, focused bool) string {
	p.state.ensure()
	return p.frame(p.body(max(20, width-4), max(3, height-2)), width, height, selected, focused)
}

func (p *dashExpanderPane) body(width, height int) string {
	if !p.expanded {
		return "▸ " + p.summary + "  (space expands)"
	}
	return "▾ " + p.summary + "\n" + p.content(width, max(1, height-1))
}

type dashSummaryPane struct {
	dashPane
}

func (p *dashSummaryPane) Update(msg tea.Msg) tea.Cmd { return nil }

func (p *dashSummaryPane) View(width, height int, selected, focused bool) string {
	p.state.ensure()
	return p.frame(p.body(max(20, width-4)), width, height, selected, focused)
}

func (p *dashSummaryPane) body(width int) string {
	if p.state.err != nil {
		return "Snapshot failed: " + p.state.err.Error()
	}
	s := p.state.series
	stats := series.Stats(s.Sales())
	lines := []string{
		fmt.Sprintf("Seed %d, %d days, anchor %s", s.Seed, s.Days, p.state.day.Format("2006-01-02")),
		fmt.Sprintf("Sales sum %.0f  mean %.1f  max %.0f", stats.Sum, stats.Mean, stats.Max),
		"",
		widgets.Sparkline{Values: s.Sales()}.Render(width, 1),
	}
	if p.state.fromCache {
		lines = append(lines, "Snapshot served from cache.")
	} else {
		lines = append(lines, "Snapshot generated fresh and cached.")
	}
	return strings.Join(lines, "\n")
}

type dashSlotPane struct {
	dashPane
	swapped bool
}

func (p *dashSlotPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "s" {
		p.swapped = !p.swapped
		if p.swapped {
			return core.StatusCmd("Slot: revenue sparkline")
		}
		return core.StatusCmd("Slot: sales sparkline")
	}
	return nil
}

func (p *dashSlotPane) View(width, height int, selected, focused bool) string {
	p.state.ensure()
	return p.frame(p.body(max(20, width-4)), width, height, selected, focused)
}

// The slot renders exactly one of its two bodies; s swaps them in place.
func (p *dashSlotPane) body(width int) string {
	if p.state.err != nil {
		return "Snapshot failed: " + p.state.err.Error()
	}
	s := p.state.series
	if p.swapped {
		return strings.Join([]string{
			"Slot B: revenue",
			widgets.Sparkline{Values: s.Revenue()}.Render(width, 1),
			"",
			"s swaps the slot back",
		}, "\n")
	}
	return strings.Join([]string{
		"Slot A: sales",
		widgets.Sparkline{Values: s.Sales()}.Render(width, 1),
		"",
		"s swaps the slot",
	}, "\n")
}

func dashRawContent(state *dashState) func(width, height int) string {
	return func(width, height int) string {
		points := state.series.Points
		const tail = 8
		if len(points) > tail {
			points = points[len(points)-tail:]
		}
		rows := make([][]string, len(points))
		for i, pt := range points {
			rows[i] = []string{
				pt.Date.Format("2006-01-02"),
				fmt.Sprintf("%.0f", pt.Sales),
				strconv.FormatFloat(pt.Revenue, 'f', 2, 64),
			}
		}
		return widgets.DataTable{
			Columns: []string{"Date", "Sales", "Revenue"},
			Rows:    rows,
		}.Render(width, height)
	}
}

func dashNotesContent() func(width, height int) string {
	notes := strings.Join([]string{
		"The series is generated from a fixed seed, so",
		"every run of the app shows the same numbers.",
		"Snapshots are cached per day; the Source card",
		"on the overview says which path served this one.",
	}, "\n")
	return func(width, height int) string { return notes }
}

// NewDashboardTab assembles the metric cards, charts, expanders and the
// swappable slot over a single per-day snapshot.
func NewDashboardTab() core.Tab {
	state := &dashState{}
	pane := func(spec core.PaneSpec) dashPane {
		return dashPane{
			id:        spec.ID,
			title:     spec.Title,
			scope:     spec.Scope,
			jump:      spec.JumpKey,
			focusable: spec.Focusable,
			state:     state,
		}
	}
	specs := []core.PaneSpec{
		{ID: "overview", Title: "Overview", Scope: "pane:dashboard:overview", JumpKey: 'o', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashOverviewPane{dashPane: pane(spec)}
		}},
		{ID: "trend", Title: "Trend", Scope: "pane:dashboard:trend", JumpKey: 't', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashTrendPane{dashPane: pane(spec)}
		}},
		{ID: "weekday", Title: "By Weekday", Scope: "pane:dashboard:weekday", JumpKey: 'w', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashWeekdayPane{dashPane: pane(spec)}
		}},
		{ID: "raw", Title: "Raw Data", Scope: "pane:dashboard:raw", JumpKey: 'r', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashExpanderPane{dashPane: pane(spec), summary: "Raw data, last 8 days", content: dashRawContent(state)}
		}},
		{ID: "notes", Title: "Notes", Scope: "pane:dashboard:notes", JumpKey: 'n', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashExpanderPane{dashPane: pane(spec), summary: "About this data", content: dashNotesContent()}
		}},
		{ID: "summary", Title: "Summary", Scope: "pane:dashboard:summary", JumpKey: 'u', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashSummaryPane{dashPane: pane(spec)}
		}},
		{ID: "slot", Title: "Slot", Scope: "pane:dashboard:slot", JumpKey: 's', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return &dashSlotPane{dashPane: pane(spec)}
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("overview", m),
				widgets.HStack{
					Widgets: []widgets.Widget{host.BuildPane("trend", m), host.BuildPane("weekday", m)},
					Ratios:  []float64{0.67, 0.33},
					Gap:     1,
				},
				widgets.HStack{
					Widgets: []widgets.Widget{host.BuildPane("raw", m), host.BuildPane("notes", m)},
					Ratios:  []float64{0.5, 0.5},
					Gap:     1,
				},
				widgets.HStack{
					Widgets: []widgets.Widget{host.BuildPane("summary", m), host.BuildPane("slot", m)},
					Ratios:  []float64{0.55, 0.45},
					Gap:     1,
				},
			},
			Ratios: []float64{0.16, 0.38, 0.2, 0.26},
		}
	}
	return core.NewGeneratedTab("dashboard", "Dashboard", specs, layout)
}
