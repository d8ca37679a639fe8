package controls

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Select shows its options as a chip row. Left and right move the
// cursor, enter or space applies it.
type Select struct {
	label    string
	options  []string
	cursor   int
	selected int
}

func NewSelect(label string, options []string, selected int) *Select {
	s := &Select{label: label, options: options}
	if len(options) > 0 {
		s.selected = clampInt(selected, 0, len(options)-1)
		s.cursor = s.selected
	}
	return s
}

func (s *Select) Label() string { return s.label }

func (s *Select) Selected() int { return s.selected }

func (s *Select) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.selected]
}

func (s *Select) Focus() tea.Cmd { return nil }

func (s *Select) Blur() {}

func (s *Select) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.options) == 0 {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		s.cursor--
		if s.cursor < 0 {
			s.cursor = len(s.options) - 1
		}
		return true, nil
	case "right", "l":
		s.cursor = (s.cursor + 1) % len(s.options)
		return true, nil
	case "enter", " ":
		s.selected = s.cursor
		return true, nil
	}
	return false, nil
}

func (s *Select) View(width int, focused bool) string {
	chips := make([]string, 0, len(s.options))
	for i, name := range s.options {
		style := chipStyle
		if focused && i == s.cursor {
			style = chipCursorStyle
		}
		if i == s.selected {
			style = style.Background(chipPickedBg).Bold(true)
		}
		chips = append(chips, style.Render(" "+name+" "))
	}
	return renderLabel(s.label, focused) + strings.Join(chips, " ")
}

// Radio picks exactly one option; the arrow keys move the dot directly.
type Radio struct {
	label    string
	options  []string
	selected int
}

func NewRadio(label string, options []string, selected int) *Radio {
	r := &Radio{label: label, options: options}
	if len(options) > 0 {
		r.selected = clampInt(selected, 0, len(options)-1)
	}
	return r
}

func (r *Radio) Label() string { return r.label }

func (r *Radio) Value() string {
	if len(r.options) == 0 {
		return ""
	}
	return r.options[r.selected]
}

func (r *Radio) Focus() tea.Cmd { return nil }

func (r *Radio) Blur() {}

func (r *Radio) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.options) == 0 {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		r.selected--
		if r.selected < 0 {
			r.selected = len(r.options) - 1
		}
		return true, nil
	case "right", "l":
		r.selected = (r.selected + 1) % len(r.options)
		return true, nil
	}
	return false, nil
}

func (r *Radio) View(width int, focused bool) string {
	parts := make([]string, 0, len(r.options))
	for i, name := range r.options {
		if i == r.selected {
			style := valueStyle
			if focused {
				style = chipCursorStyle
			}
			parts = append(parts, style.Render("(•) "+name))
			continue
		}
		parts = append(parts, chipStyle.Render("( ) "+name))
	}
	return renderLabel(r.label, focused) + strings.Join(parts, "  ")
}

// MultiSelect toggles any number of options with space.
type MultiSelect struct {
	label   string
	options []string
	cursor  int
	picked  []bool
}

func NewMultiSelect(label string, options []string, picked []int) *MultiSelect {
	m := &MultiSelect{label: label, options: options, picked: make([]bool, len(options))}
	for _, i := range picked {
		if i >= 0 && i < len(options) {
			m.picked[i] = true
		}
	}
	return m
}

func (m *MultiSelect) Label() string { return m.label }

// Values returns the chosen options in declaration order.
func (m *MultiSelect) Values() []string {
	var out []string
	for i, name := range m.options {
		if m.picked[i] {
			out = append(out, name)
		}
	}
	return out
}

func (m *MultiSelect) Focus() tea.Cmd { return nil }

func (m *MultiSelect) Blur() {}

func (m *MultiSelect) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.options) == 0 {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.options) - 1
		}
		return true, nil
	case "right", "l":
		m.cursor = (m.cursor + 1) % len(m.options)
		return true, nil
	case " ":
		m.picked[m.cursor] = !m.picked[m.cursor]
		return true, nil
	}
	return false, nil
}

func (m *MultiSelect) View(width int, focused bool) string {
	parts := make([]string, 0, len(m.options))
	for i, name := range m.options {
		box := "[ ] "
		style := chipStyle
		if m.picked[i] {
			box = "[x] "
			style = valueStyle
		}
		if focused && i == m.cursor {
			style = chipCursorStyle
		}
		parts = append(parts, style.Render(box+name))
	}
	return renderLabel(m.label, focused) + strings.Join(parts, "  ")
}
