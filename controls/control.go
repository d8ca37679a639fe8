package controls

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Control is a single form element. Update reports whether the control
// consumed the message, so owners can fall back to focus cycling for
// keys the active control has no use for.
type Control interface {
	Label() string
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) (bool, tea.Cmd)
	View(width int, focused bool) string
}

// Group walks focus across an ordered set of controls. Tab and shift+tab
// always cycle; enter and the arrow keys cycle only when the active
// control declined them, so a text field keeps its cursor movement and a
// chip row keeps its selection keys.
type Group struct {
	controls []Control
	focus    int
}

func NewGroup(controls ...Control) *Group {
	return &Group{controls: controls}
}

func (g *Group) Controls() []Control { return g.controls }

func (g *Group) ActiveIndex() int { return g.focus }

func (g *Group) Active() Control {
	if len(g.controls) == 0 {
		return nil
	}
	return g.controls[g.focus]
}

// Focus focuses the active control, typically when the owning pane
// itself gains focus.
func (g *Group) Focus() tea.Cmd {
	if c := g.Active(); c != nil {
		return c.Focus()
	}
	return nil
}

func (g *Group) Blur() {
	if c := g.Active(); c != nil {
		c.Blur()
	}
}

// Cycle moves focus by dir with wraparound, blurring the old control and
// focusing the new one.
func (g *Group) Cycle(dir int) tea.Cmd {
	if len(g.controls) < 2 {
		return nil
	}
	g.controls[g.focus].Blur()
	g.focus = (g.focus + dir + len(g.controls)) % len(g.controls)
	return g.controls[g.focus].Focus()
}

func (g *Group) Update(msg tea.Msg) (bool, tea.Cmd) {
	active := g.Active()
	if active == nil {
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Non-key traffic (cursor blink) belongs to the active control.
		return active.Update(msg)
	}
	switch keyMsg.String() {
	case "tab":
		return true, g.Cycle(1)
	case "shift+tab":
		return true, g.Cycle(-1)
	}
	handled, cmd := active.Update(msg)
	if !handled {
		switch keyMsg.String() {
		case "enter", "down", "right", "l":
			return true, g.Cycle(1)
		case "up", "left", "h":
			return true, g.Cycle(-1)
		}
	}
	return handled, cmd
}

// View stacks the controls vertically. Only the active control renders
// focused, and only while the owner itself is focused.
func (g *Group) View(width int, focused bool) string {
	lines := make([]string, 0, len(g.controls))
	for i, c := range g.controls {
		lines = append(lines, c.View(width, focused && i == g.focus))
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
