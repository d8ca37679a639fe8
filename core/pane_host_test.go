package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func demoHost() *PaneHost {
	h := NewPaneHost(
		NewStaticPane("metrics", "Metrics", "pane:dash:metrics", 'm', true, "totals", 8),
		NewStaticPane("trend", "Trend", "pane:dash:trend", 't', true, "chart", 8),
		NewStaticPane("hints", "Hints", "pane:dash:hints", 'h', false, "keys", 8),
	)
	return &h
}

func press(h *PaneHost, key tea.KeyType) (bool, tea.Cmd) {
	return h.HandlePaneKey(&Model{}, tea.KeyMsg{Type: key})
}

func TestScopeFollowsSelectionThenFocus(t *testing.T) {
	h := demoHost()
	if got := h.Scope(); got != "pane:dash:metrics" {
		t.Fatalf("initial scope = %s", got)
	}
	press(h, tea.KeyRight)
	if got := h.Scope(); got != "pane:dash:trend" {
		t.Fatalf("scope after right = %s", got)
	}
	press(h, tea.KeyEnter)
	if got := h.ActivePaneTitle(); got != "Trend" {
		t.Fatalf("focused title = %s", got)
	}

	// Arrows no longer move selection while focused; the pane gets them.
	if handled, _ := press(h, tea.KeyDown); handled {
		t.Fatalf("down should pass through to the focused pane")
	}
	if got := h.Scope(); got != "pane:dash:trend" {
		t.Fatalf("scope moved while focused: %s", got)
	}

	if handled, _ := press(h, tea.KeyEsc); !handled {
		t.Fatalf("esc should release focus")
	}
	if h.focused != -1 {
		t.Fatalf("focused = %d after esc", h.focused)
	}
	press(h, tea.KeyRight)
	if got := h.Scope(); got != "pane:dash:hints" {
		t.Fatalf("selection stuck after unfocus: %s", got)
	}
}

func TestSelectionWrapsAndReportsStatus(t *testing.T) {
	h := demoHost()
	m := &Model{}
	h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := h.Scope(); got != "pane:dash:hints" {
		t.Fatalf("left from first pane should wrap to last, got %s", got)
	}
	if !strings.Contains(m.status, "Selected pane: Hints") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestEnterRefusesUnfocusablePane(t *testing.T) {
	h := demoHost()
	press(h, tea.KeyLeft) // wrap to Hints, which is not focusable
	m := &Model{}
	handled, _ := h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !handled {
		t.Fatalf("enter is still claimed when the pane refuses focus")
	}
	if h.focused != -1 {
		t.Fatalf("unfocusable pane gained focus")
	}
	if !strings.Contains(m.status, "not focusable") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestJumpTargetsSkipUnfocusablePanes(t *testing.T) {
	h := demoHost()
	targets := h.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("targets = %d, want 2 (hints is not focusable)", len(targets))
	}
	handled, _ := h.JumpToTarget(&Model{}, "T")
	if !handled {
		t.Fatalf("jump key should be case-insensitive")
	}
	if got := h.ActivePaneTitle(); got != "Trend" {
		t.Fatalf("jump landed on %s", got)
	}
	if handled, _ := h.JumpToTarget(&Model{}, "h"); handled {
		t.Fatalf("unfocusable pane must not be a jump target")
	}
}

func TestBuildPaneCarriesSelectionState(t *testing.T) {
	h := demoHost()
	press(h, tea.KeyEnter)
	w := h.BuildPane("metrics", &Model{})
	out := w.Render(30, 8)
	if !strings.Contains(out, "●") {
		t.Fatalf("focused pane should render the focus marker:\n%s", out)
	}
	if missing := h.BuildPane("nope", &Model{}); missing == nil {
		t.Fatalf("unknown ids still produce a placeholder widget")
	}
}

func TestNewPaneHostRejectsDuplicateJumpKeys(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for duplicate jump keys")
		}
	}()
	NewPaneHost(
		NewStaticPane("a", "A", "pane:x:a", 'd', true, "", 8),
		NewStaticPane("b", "B", "pane:x:b", 'D', true, "", 8),
	)
}

type countingPane struct {
	*StaticPane
	updates int
}

func (p *countingPane) Update(msg tea.Msg) tea.Cmd {
	p.updates++
	return nil
}

func TestBroadcastReachesEveryPane(t *testing.T) {
	a := &countingPane{StaticPane: NewStaticPane("a", "A", "pane:x:a", 'a', true, "", 8)}
	b := &countingPane{StaticPane: NewStaticPane("b", "B", "pane:x:b", 'b', true, "", 8)}
	h := NewPaneHost(a, b)

	type tick struct{}
	h.Broadcast(&Model{}, tick{})
	if a.updates != 1 || b.updates != 1 {
		t.Fatalf("broadcast hit a=%d b=%d, want 1/1", a.updates, b.updates)
	}

	h.UpdateActive(&Model{}, tick{})
	if a.updates != 2 || b.updates != 1 {
		t.Fatalf("active update hit a=%d b=%d, want 2/1", a.updates, b.updates)
	}
}

func TestGeneratedTabRoutesKeysToActivePaneOnly(t *testing.T) {
	var made []*countingPane
	specs := []PaneSpec{
		{ID: "one", Title: "One", Scope: "pane:g:1", JumpKey: '1', Focusable: true,
			Factory: func(spec PaneSpec) Pane {
				p := &countingPane{StaticPane: NewStaticPane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, spec.Focusable, spec.Text, spec.Height)}
				made = append(made, p)
				return p
			}},
		{ID: "two", Title: "Two", Scope: "pane:g:2", JumpKey: '2', Focusable: true,
			Factory: func(spec PaneSpec) Pane {
				p := &countingPane{StaticPane: NewStaticPane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, spec.Focusable, spec.Text, spec.Height)}
				made = append(made, p)
				return p
			}},
	}
	tab := NewGeneratedTab("g", "Generated", specs, nil)

	tab.Update(&Model{}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if made[0].updates != 1 || made[1].updates != 0 {
		t.Fatalf("key update hit %d/%d, want 1/0", made[0].updates, made[1].updates)
	}

	type done struct{}
	tab.Update(&Model{}, done{})
	if made[0].updates != 2 || made[1].updates != 1 {
		t.Fatalf("broadcast hit %d/%d, want 2/1", made[0].updates, made[1].updates)
	}
}
