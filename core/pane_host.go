package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/widgets"
)

// PaneHost tracks which of a tab's panes is selected (arrow keys) and
// which, if any, holds focus (enter; esc releases). Selection highlights;
// focus routes input.
type PaneHost struct {
	panes    []Pane
	selected int
	focused  int
}

// NewPaneHost panics on missing or duplicate jump keys: pane wiring is
// static, so a bad key is a programming error caught on startup.
func NewPaneHost(panes ...Pane) PaneHost {
	claimed := make(map[byte]string, len(panes))
	for _, p := range panes {
		if p == nil {
			continue
		}
		key := normalizePaneJumpKey(p.JumpKey())
		if key == 0 {
			panic(fmt.Sprintf("pane %q must declare a single alphanumeric jump key", p.ID()))
		}
		if other, taken := claimed[key]; taken {
			panic(fmt.Sprintf("duplicate jump key %q across panes %q and %q", string(key), other, p.ID()))
		}
		claimed[key] = p.ID()
	}
	return PaneHost{panes: panes, focused: -1}
}

func (h *PaneHost) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(h.panes))
	for _, p := range h.panes {
		if p == nil {
			continue
		}
		if cmd := p.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// pane returns the pane at idx, or nil when idx is out of range.
func (h *PaneHost) pane(idx int) Pane {
	if idx < 0 || idx >= len(h.panes) {
		return nil
	}
	return h.panes[idx]
}

// active is the focused pane when one exists, else the selected pane.
func (h *PaneHost) active() Pane {
	if p := h.pane(h.focused); p != nil {
		return p
	}
	return h.pane(h.selected)
}

func (h *PaneHost) Scope() string {
	if p := h.active(); p != nil {
		return p.Scope()
	}
	return ""
}

func (h *PaneHost) ActivePaneTitle() string {
	if p := h.active(); p != nil {
		return p.Title()
	}
	return ""
}

// CapturingInput reports whether the focused pane wants raw key input.
func (h *PaneHost) CapturingInput() bool {
	capturer, ok := h.pane(h.focused).(InputCapturer)
	return ok && capturer.CapturingInput()
}

func (h *PaneHost) UpdateActive(m *Model, msg tea.Msg) tea.Cmd {
	_ = m
	if p := h.active(); p != nil {
		return p.Update(msg)
	}
	return nil
}

// Broadcast hands a message to every pane. Completion messages from
// background commands land wherever the request originated, regardless of
// which pane is selected by then.
func (h *PaneHost) Broadcast(m *Model, msg tea.Msg) tea.Cmd {
	_ = m
	var cmds []tea.Cmd
	for _, p := range h.panes {
		if cmd := p.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// HandlePaneKey implements selection and focus. While a pane is focused
// only esc is claimed; arrows and enter pass through to the pane.
func (h *PaneHost) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.pane(h.focused) != nil {
		if msg.String() == "esc" {
			return true, h.unfocus(m)
		}
		return false, nil
	}
	switch msg.String() {
	case "left", "up":
		return true, h.moveSelection(m, -1)
	case "right", "down":
		return true, h.moveSelection(m, 1)
	case "enter":
		return true, h.focusSelected(m)
	}
	return false, nil
}

func (h *PaneHost) moveSelection(m *Model, delta int) tea.Cmd {
	if len(h.panes) <= 1 {
		return nil
	}
	prev := h.selected
	prevFocused := h.focused
	h.selected = (h.selected + delta + len(h.panes)) % len(h.panes)
	if prev == h.selected {
		return nil
	}
	h.focused = -1
	m.SetStatus("Selected pane: " + h.panes[h.selected].Title())
	cmds := []tea.Cmd{h.panes[prev].OnDeselect(), h.panes[h.selected].OnSelect()}
	if p := h.pane(prevFocused); p != nil {
		cmds = append(cmds, p.OnBlur())
	}
	return tea.Batch(cmds...)
}

func (h *PaneHost) focusSelected(m *Model) tea.Cmd {
	target := h.pane(h.selected)
	if target == nil {
		return nil
	}
	if !target.Focusable() {
		m.SetStatus("Pane not focusable: " + target.Title())
		return nil
	}
	prev := h.pane(h.focused)
	h.focused = h.selected
	m.SetStatus("Focused pane: " + target.Title())
	if prev != nil {
		return tea.Batch(prev.OnBlur(), target.OnFocus())
	}
	return target.OnFocus()
}

func (h *PaneHost) unfocus(m *Model) tea.Cmd {
	p := h.pane(h.focused)
	if p == nil {
		return nil
	}
	h.focused = -1
	m.SetStatus("Pane unfocused: " + p.Title())
	return p.OnBlur()
}

// JumpTargets lists the focusable panes under their jump keys.
func (h *PaneHost) JumpTargets() []JumpTarget {
	out := make([]JumpTarget, 0, len(h.panes))
	for _, p := range h.panes {
		if p == nil || !p.Focusable() {
			continue
		}
		if key := normalizePaneJumpKey(p.JumpKey()); key != 0 {
			out = append(out, JumpTarget{Key: string(key), Label: p.Title()})
		}
	}
	return out
}

// JumpToTarget selects and focuses the pane registered under key.
func (h *PaneHost) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	jumpKey := normalizeJumpTargetKey(key)
	if jumpKey == 0 {
		return false, nil
	}
	target := -1
	for idx, p := range h.panes {
		if p == nil || !p.Focusable() {
			continue
		}
		if normalizePaneJumpKey(p.JumpKey()) == jumpKey {
			target = idx
			break
		}
	}
	if target < 0 {
		return false, nil
	}

	prevSelected := h.selected
	prevFocused := h.focused
	h.selected, h.focused = target, target
	m.SetStatus("Focused pane: " + h.panes[target].Title())

	cmds := make([]tea.Cmd, 0, 4)
	if p := h.pane(prevSelected); p != nil && prevSelected != target {
		cmds = append(cmds, p.OnDeselect(), h.panes[target].OnSelect())
	}
	if p := h.pane(prevFocused); p != nil && prevFocused != target {
		cmds = append(cmds, p.OnBlur(), h.panes[target].OnFocus())
	} else if prevFocused != target {
		cmds = append(cmds, h.panes[target].OnFocus())
	}
	return true, tea.Batch(cmds...)
}

// BuildPane wraps the pane with the given id for the layout builder,
// carrying the current selection state into the render.
func (h *PaneHost) BuildPane(id string, m *Model) widgets.Widget {
	_ = m
	for idx, p := range h.panes {
		if p.ID() == id {
			return hostedPane{pane: p, selected: idx == h.selected, focused: idx == h.focused}
		}
	}
	return widgets.Pane{Title: "Missing Pane", Height: 10, Content: id}
}

type hostedPane struct {
	pane     Pane
	selected bool
	focused  bool
}

func (w hostedPane) Render(width, height int) string {
	return w.pane.View(width, height, w.selected, w.focused)
}
