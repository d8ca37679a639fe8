package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status, m.statusErr = msg.Text, msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case JumpTargetSelectedMsg:
		cmd := m.resolveJump(msg.Key)
		return m, cmd
	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	// Everything else (ticks, command completions) goes to the top
	// screen when one is open, otherwise to the active tab.
	if m.screens.Top() != nil {
		return m.updateTopScreen(msg)
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.screens.Top() != nil {
		return m.updateTopScreen(msg)
	}

	// A focused input pane owns the keyboard: only esc (via the pane
	// handler) leaves capture, everything else reaches the pane as text.
	if m.capturingInput() {
		if handled, cmd := m.tryPaneKey(msg); handled {
			return m, cmd
		}
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}

	scope := m.ActiveScope()
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, "jump", scope):
		return m, m.activateJumpPicker()
	}
	if handled, cmd := m.tryPaneKey(msg); handled {
		return m, cmd
	}
	if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
		m.screens.Push(m.OpenCommandModal(&m, scope))
		return m, nil
	}
	for i := range m.tabs {
		if m.keys.IsAction(msg, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			m.SwitchTab(i)
			return m, nil
		}
	}
	if len(m.tabs) > 0 {
		return m, m.tabs[m.activeTab].Update(&m, msg)
	}
	return m, nil
}

func (m Model) updateTopScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	next, cmd, done := top.Update(msg)
	if done {
		m.screens.Pop()
		return m, cmd
	}
	m.screens.ReplaceTop(next)
	return m, cmd
}

func (m *Model) tryPaneKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(m.tabs) == 0 {
		return false, nil
	}
	handler, ok := m.tabs[m.activeTab].(PaneKeyHandler)
	if !ok {
		return false, nil
	}
	return handler.HandlePaneKey(m, msg)
}

func (m *Model) resolveJump(key string) tea.Cmd {
	if len(m.tabs) == 0 {
		return nil
	}
	provider, ok := m.tabs[m.activeTab].(JumpTargetProvider)
	if !ok {
		return nil
	}
	if handled, cmd := provider.JumpToTarget(m, key); handled {
		return cmd
	}
	return nil
}
