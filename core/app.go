package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"tuilab/widgets"
)

// Screen is a modal overlay (command palette, jump picker). Update returns
// the replacement screen, a command, and whether the screen is finished
// and should pop.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one page of the app. Build returns the widget tree for the
// current model; it must be pure so every message can re-render the whole
// page from state.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// PaneKeyHandler is implemented by tabs that run a pane host and want
// selection/focus keys before the registry sees them.
type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
	ActivePaneTitle() string
}

// TabInitializer lets a tab schedule startup work (initial loads).
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// Model is the whole application state: tab set, screen stack, registries
// and the status line. It is the single source every render derives from.
type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool

	// Wiring hooks so richer screen implementations can live outside
	// this package without an import cycle.
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry) Model {
	return Model{
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    100,
		height:   32,
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range m.tabs {
		if init, ok := t.(TabInitializer); ok {
			if cmd := init.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status, m.statusErr = msg, false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status, m.statusErr = "", false
		return
	}
	m.status, m.statusErr = err.Error(), true
}

// ActiveScope is the key/command scope of whatever owns input right now:
// the top screen if one is open, otherwise the active tab (which in turn
// reports its selected or focused pane).
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m *Model) SwitchTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
	}
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m *Model) PushScreen(s Screen)               { m.screens.Push(s) }
func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }
func (m *Model) Keys() *KeyRegistry                { return m.keys }

// capturingInput reports whether the active tab currently routes raw keys
// to a focused input pane.
func (m *Model) capturingInput() bool {
	if len(m.tabs) == 0 {
		return false
	}
	capturer, ok := m.tabs[m.activeTab].(InputCapturer)
	return ok && capturer.CapturingInput()
}
