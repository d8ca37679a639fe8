package tabs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/controls"
	"tuilab/core"
	"tuilab/widgets"
)

// adjustCounter writes through the session store immediately so the next
// render already shows the new value; the returned command only reports.
func adjustCounter(delta int64) tea.Cmd {
	store := activeStore()
	if store == nil {
		return core.StatusCmd("Session store not ready")
	}
	value, err := store.AdjustCounter(context.Background(), delta)
	if err != nil {
		return core.ErrorCmd(fmt.Errorf("adjust counter: %w", err))
	}
	return core.StatusCmd(fmt.Sprintf("Counter: %d", value))
}

func resetCounter() tea.Cmd {
	store := activeStore()
	if store == nil {
		return core.StatusCmd("Session store not ready")
	}
	if _, err := store.ResetCounter(context.Background()); err != nil {
		return core.ErrorCmd(fmt.Errorf("reset counter: %w", err))
	}
	return core.StatusCmd("Counter reset")
}

type counterDisplayPane struct {
	id    string
	title string
	scope string
	jump  byte
}

func newCounterDisplayPane(spec core.PaneSpec) *counterDisplayPane {
	return &counterDisplayPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey}
}

func (p *counterDisplayPane) ID() string                 { return p.id }
func (p *counterDisplayPane) Title() string              { return p.title }
func (p *counterDisplayPane) Scope() string              { return p.scope }
func (p *counterDisplayPane) JumpKey() byte              { return p.jump }
func (p *counterDisplayPane) Focusable() bool            { return false }
func (p *counterDisplayPane) Init() tea.Cmd              { return nil }
func (p *counterDisplayPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *counterDisplayPane) OnSelect() tea.Cmd          { return nil }
func (p *counterDisplayPane) OnDeselect() tea.Cmd        { return nil }
func (p *counterDisplayPane) OnFocus() tea.Cmd           { return nil }
func (p *counterDisplayPane) OnBlur() tea.Cmd            { return nil }

func (p *counterDisplayPane) View(width, height int, selected, focused bool) string {
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(p.body(max(20, width-4)), max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *counterDisplayPane) body(width int) string {
	store := activeStore()
	if store == nil {
		return "Session store not ready."
	}
	value, err := store.Counter(context.Background())
	if err != nil {
		return "Counter load failed: " + err.Error()
	}
	cards := widgets.MetricRow{Metrics: []widgets.Metric{
		{Label: "Counter", Value: strconv.FormatInt(value, 10)},
		{Label: "Session", Value: store.ShortID()},
	}}.Render(width, 3)
	return strings.Join([]string{
		cards,
		"",
		"The value survives re-renders and tab switches; it lives in the",
		"session store and resets when the session ends.",
	}, "\n")
}

type counterControlsPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	group   *controls.Group
	focused bool
}

func newCounterControlsPane(spec core.PaneSpec) *counterControlsPane {
	group := controls.NewGroup(
		controls.NewButton("Increment", func() tea.Cmd { return adjustCounter(1) }),
		controls.NewButton("Decrement", func() tea.Cmd { return adjustCounter(-1) }),
		controls.NewButton("Reset", func() tea.Cmd { return resetCounter() }),
	)
	return &counterControlsPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey, group: group}
}

func (p *counterControlsPane) ID() string      { return p.id }
func (p *counterControlsPane) Title() string   { return p.title }
func (p *counterControlsPane) Scope() string   { return p.scope }
func (p *counterControlsPane) JumpKey() byte   { return p.jump }
func (p *counterControlsPane) Focusable() bool { return true }
func (p *counterControlsPane) Init() tea.Cmd   { return nil }

func (p *counterControlsPane) OnSelect() tea.Cmd   { return nil }
func (p *counterControlsPane) OnDeselect() tea.Cmd { return nil }
func (p *counterControlsPane) OnFocus() tea.Cmd {
	p.focused = true
	return p.group.Focus()
}
func (p *counterControlsPane) OnBlur() tea.Cmd {
	p.focused = false
	p.group.Blur()
	return nil
}

// The adjust keys work while the pane is merely selected; the button row
// needs focus so enter is not mistaken for pane focus.
func (p *counterControlsPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "+", "=":
		return adjustCounter(1)
	case "-":
		return adjustCounter(-1)
	case "r":
		return resetCounter()
	}
	if !p.focused {
		return nil
	}
	_, cmd := p.group.Update(keyMsg)
	return cmd
}

func (p *counterControlsPane) View(width, height int, selected, focused bool) string {
	body := strings.Join([]string{
		p.group.View(max(20, width-4), p.focused),
		"",
		"+/- adjust  r reset  enter press",
	}, "\n")
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// NewCounterTab pairs the metric card with a button row over the shared
// session counter.
func NewCounterTab() core.Tab {
	specs := []core.PaneSpec{
		{ID: "display", Title: "Counter", Scope: "pane:counter:display", JumpKey: 'd', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return newCounterDisplayPane(spec)
		}},
		{ID: "controls", Title: "Controls", Scope: "pane:counter:controls", JumpKey: 'c', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newCounterControlsPane(spec)
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("display", m),
				host.BuildPane("controls", m),
			},
			Ratios: []float64{0.45, 0.55},
		}
	}
	return core.NewGeneratedTab("counter", "Counter", specs, layout)
}
