package controls

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextField wraps a single-line text input. Enter, up and down are left
// to the owner so forms can move focus past the field.
type TextField struct {
	label string
	input textinput.Model
}

func NewTextField(label, placeholder, value string) *TextField {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Width = 24
	in.SetValue(value)
	return &TextField{label: label, input: in}
}

func (f *TextField) Label() string { return f.label }

func (f *TextField) Value() string { return f.input.Value() }

func (f *TextField) SetValue(v string) { f.input.SetValue(v) }

func (f *TextField) Reset() { f.input.Reset() }

func (f *TextField) SetWidth(w int) { f.input.Width = w }

func (f *TextField) Focus() tea.Cmd { return f.input.Focus() }

func (f *TextField) Blur() { f.input.Blur() }

func (f *TextField) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "up", "down", "tab", "shift+tab":
			return false, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return true, cmd
}

func (f *TextField) View(width int, focused bool) string {
	return renderLabel(f.label, focused) + f.input.View()
}
