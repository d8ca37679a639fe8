package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// JumpTarget is a focusable pane advertised to the jump picker under a
// single-glyph key.
type JumpTarget struct {
	Key   string
	Label string
}

// JumpTargetProvider is implemented by tabs whose panes can be jumped to.
type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

// activateJumpPicker opens the jump picker over the active tab's targets.
// OpenJumpPickerModal lets the wiring layer substitute a richer screen;
// the built-in picker screen is the fallback.
func (m *Model) activateJumpPicker() tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		return StatusCmd("No jump targets here")
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		return StatusCmd("No jump targets here")
	}
	if m.OpenJumpPickerModal != nil {
		m.screens.Push(m.OpenJumpPickerModal(m, targets))
	} else {
		m.screens.Push(newJumpPickerScreen(targets))
	}
	return nil
}

// jumpPickerScreen is the unstyled fallback picker. A single live glyph
// jumps immediately; anything longer filters the list.
type jumpPickerScreen struct {
	targets map[string]JumpTarget
	picker  *Picker
}

func newJumpPickerScreen(targets []JumpTarget) *jumpPickerScreen {
	s := &jumpPickerScreen{targets: make(map[string]JumpTarget, len(targets))}
	items := make([]PickerItem, 0, len(targets))
	for _, t := range targets {
		key := normalizeJumpKey(t.Key)
		if key == "" {
			continue
		}
		t.Key = key
		s.targets[key] = t
		items = append(items, PickerItem{
			ID:     key,
			Label:  "[" + key + "] " + t.Label,
			Meta:   "jump target",
			Search: key + " " + t.Label,
		})
	}
	s.picker = NewPicker("Jump Picker", items)
	return s
}

func (s *jumpPickerScreen) Title() string { return "Jump Picker" }
func (s *jumpPickerScreen) Scope() string { return "screen:jump-picker" }

func (s *jumpPickerScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := strings.ToLower(strings.TrimSpace(keyMsg.String()))
	if keyName == "esc" {
		return s, nil, true
	}
	if target, live := s.targets[keyName]; live && isJumpGlyph(keyName) {
		return s, jumpCmd(target.Key), true
	}
	switch result := s.picker.HandleKey(keyName); result.Action {
	case PickerActionCancelled:
		return s, nil, true
	case PickerActionSelected:
		if result.Item.ID == "" {
			return s, nil, true
		}
		return s, jumpCmd(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func (s *jumpPickerScreen) View(width, height int) string {
	var b strings.Builder
	q := strings.TrimSpace(s.picker.Query())
	if q == "" {
		q = "(type to filter)"
	}
	b.WriteString("Filter: " + q + "\n\n")
	items := s.picker.Items()
	if len(items) == 0 {
		b.WriteString("  No jump targets\n")
	}
	for i, item := range items {
		if i == s.picker.Cursor() {
			b.WriteString("> " + item.Label + "\n")
		} else {
			b.WriteString("  " + item.Label + "\n")
		}
	}
	b.WriteString("\nType pane key to jump. Enter selects row. Esc cancels.")
	return ClipHeight(TrimToWidth(b.String(), max(20, width)), max(6, height))
}

func jumpCmd(key string) tea.Cmd {
	return func() tea.Msg { return JumpTargetSelectedMsg{Key: key} }
}

func normalizeJumpKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	if !isJumpGlyph(k) {
		return ""
	}
	return k
}

func isJumpGlyph(k string) bool {
	r := []rune(k)
	return len(r) == 1 && (unicode.IsLetter(r[0]) || unicode.IsDigit(r[0]))
}
