package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tuilab/core"
)

// CommandOption is one palette row. Disabled rows stay visible so the
// reason can be read, but selecting one only reports the reason.
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (o CommandOption) Title() string {
	if o.Disabled && o.Reason != "" {
		return o.Name + " (" + o.Reason + ")"
	}
	return o.Name
}

func (o CommandOption) Description() string { return o.Desc }
func (o CommandOption) FilterValue() string { return o.Name + " " + o.Desc + " " + o.ID }

// CommandScreen is the palette overlay: a query input over a live result
// list. The search callback re-runs on every keystroke; bubbles' own list
// filtering stays off so the registry's scope-aware search is the only
// filter.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	results  list.Model
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	input := textinput.New()
	input.Placeholder = "Search commands"
	input.Prompt = "cmd> "
	input.Focus()

	results := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	results.SetShowStatusBar(false)
	results.SetFilteringEnabled(false)
	results.SetShowHelp(false)

	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: input, results: results}
	s.requery()
	return s
}

func (s *CommandScreen) Title() string { return "Command Palette" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, nil, true
		case "enter":
			option, ok := s.results.SelectedItem().(CommandOption)
			if !ok {
				break
			}
			if option.Disabled {
				return s, core.StatusCmd(option.Reason), true
			}
			if s.onSelect == nil {
				return s, nil, true
			}
			return s, func() tea.Msg { return s.onSelect(option.ID) }, true
		}
	}

	var inputCmd, listCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.requery()
	s.results, listCmd = s.results.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

func (s *CommandScreen) requery() {
	hits := s.search(strings.TrimSpace(s.input.Value()))
	rows := make([]list.Item, len(hits))
	for i, hit := range hits {
		rows[i] = hit
	}
	_ = s.results.SetItems(rows)
}

func (s *CommandScreen) View(width, height int) string {
	s.results.SetWidth(width)
	s.results.SetHeight(max(6, height-4))
	return "Command Palette (scope: " + s.scope + ")\n" + s.input.View() + "\n" + s.results.View()
}
