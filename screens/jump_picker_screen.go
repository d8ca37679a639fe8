package screens

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuilab/core"
)

var (
	jumpKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	jumpLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	jumpHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// JumpPickerScreen is the styled jump overlay the wiring layer installs
// over core's plain built-in picker. A single pane key jumps immediately;
// typing anything longer filters the target list instead.
type JumpPickerScreen struct {
	targets map[string]core.JumpTarget
	picker  *core.Picker
}

func NewJumpPickerScreen(targets []core.JumpTarget) *JumpPickerScreen {
	s := &JumpPickerScreen{targets: make(map[string]core.JumpTarget, len(targets))}
	items := make([]core.PickerItem, 0, len(targets))
	for _, t := range targets {
		key := normalizeJumpGlyph(t.Key)
		if key == "" {
			continue
		}
		t.Key = key
		s.targets[key] = t
		items = append(items, core.PickerItem{
			ID:     key,
			Label:  t.Label,
			Meta:   "jump target",
			Search: key + " " + t.Label,
		})
	}
	s.picker = core.NewPicker("Jump to Pane", items)
	return s
}

func (s *JumpPickerScreen) Title() string { return "Jump to Pane" }
func (s *JumpPickerScreen) Scope() string { return "screen:jump-picker" }

func (s *JumpPickerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	keyName := strings.ToLower(strings.TrimSpace(keyMsg.String()))
	if keyName == "esc" {
		return s, nil, true
	}
	if target, live := s.targets[keyName]; live && isJumpGlyph(keyName) {
		return s, selectTarget(target.Key), true
	}
	switch result := s.picker.HandleKey(keyName); result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		if result.Item.ID == "" {
			return s, nil, true
		}
		return s, selectTarget(result.Item.ID), true
	default:
		return s, nil, false
	}
}

func (s *JumpPickerScreen) View(width, height int) string {
	_ = width
	lines := make([]string, 0, len(s.targets)+4)
	lines = append(lines, jumpLabelStyle.Bold(true).Render(s.Title()))
	if q := strings.TrimSpace(s.picker.Query()); q != "" {
		lines = append(lines, jumpHintStyle.Render("filter: ")+jumpLabelStyle.Render(q))
	}
	lines = append(lines, "")

	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, jumpHintStyle.Render("  no jump targets"))
	}
	for i, item := range items {
		prefix := "  "
		if i == s.picker.Cursor() {
			prefix = "> "
		}
		lines = append(lines, prefix+jumpKeyStyle.Render("["+item.ID+"]")+" "+jumpLabelStyle.Render(item.Label))
	}
	lines = append(lines, "", jumpHintStyle.Render("pane key jumps · enter selects · esc cancels"))
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}

func selectTarget(key string) tea.Cmd {
	return func() tea.Msg { return core.JumpTargetSelectedMsg{Key: key} }
}

func normalizeJumpGlyph(k string) string {
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
