package core

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg sets the status bar line. Errors render in the error style.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// PushScreenMsg opens a modal screen over the active tab.
type PushScreenMsg struct {
	Screen Screen
}

// PopScreenMsg closes the top screen.
type PopScreenMsg struct{}

// CommandExecuteMsg runs a registered command by id, typically emitted by
// the command palette on selection.
type CommandExecuteMsg struct {
	CommandID string
}

// TabSwitchMsg activates the tab at Index.
type TabSwitchMsg struct {
	Index int
}

// JumpTargetSelectedMsg is emitted by the jump picker when the user picks
// a pane target; the active tab resolves the key to a pane.
type JumpTargetSelectedMsg struct {
	Key string
}

// StatusCmd wraps a plain status line in a command.
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorCmd reports err on the status bar; a nil err clears it.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
