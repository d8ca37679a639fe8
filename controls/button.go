package controls

import tea "github.com/charmbracelet/bubbletea"

// Button fires its press callback on enter or space.
type Button struct {
	label string
	press func() tea.Cmd
}

func NewButton(label string, press func() tea.Cmd) *Button {
	return &Button{label: label, press: press}
}

func (b *Button) Label() string { return b.label }

func (b *Button) Focus() tea.Cmd { return nil }

func (b *Button) Blur() {}

func (b *Button) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "enter", " ":
		if b.press != nil {
			return true, b.press()
		}
		return true, nil
	}
	return false, nil
}

func (b *Button) View(width int, focused bool) string {
	if focused {
		return buttonFocusStyle.Render(b.label)
	}
	return buttonStyle.Render(b.label)
}
