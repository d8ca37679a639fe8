package controls

import tea "github.com/charmbracelet/bubbletea"

// Toggle is an on/off switch. Space flips it, left and right set it.
type Toggle struct {
	label string
	on    bool
}

func NewToggle(label string, on bool) *Toggle {
	return &Toggle{label: label, on: on}
}

func (t *Toggle) Label() string { return t.label }

func (t *Toggle) On() bool { return t.on }

func (t *Toggle) Focus() tea.Cmd { return nil }

func (t *Toggle) Blur() {}

func (t *Toggle) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case " ":
		t.on = !t.on
		return true, nil
	case "left", "h":
		t.on = false
		return true, nil
	case "right", "l":
		t.on = true
		return true, nil
	}
	return false, nil
}

func (t *Toggle) View(width int, focused bool) string {
	state := offStyle.Render("○ off")
	if t.on {
		state = onStyle.Render("● on")
	}
	return renderLabel(t.label, focused) + state
}

// Checkbox is a labelled yes/no box toggled with space.
type Checkbox struct {
	label   string
	checked bool
}

func NewCheckbox(label string, checked bool) *Checkbox {
	return &Checkbox{label: label, checked: checked}
}

func (c *Checkbox) Label() string { return c.label }

func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) Focus() tea.Cmd { return nil }

func (c *Checkbox) Blur() {}

func (c *Checkbox) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	if keyMsg.String() == " " {
		c.checked = !c.checked
		return true, nil
	}
	return false, nil
}

func (c *Checkbox) View(width int, focused bool) string {
	box := "[ ] "
	if c.checked {
		box = "[x] "
	}
	if focused {
		return activeStyle.Render(box + c.label)
	}
	return valueStyle.Render(box + c.label)
}
