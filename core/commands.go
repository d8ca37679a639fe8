package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette-invokable action. Disabled, when set, can veto
// execution with a reason the palette shows inline.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

// CommandResult is one palette search hit.
type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	r := &CommandRegistry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID != "" {
		r.commands[c.ID] = c
	}
}

// Search returns the commands live in scope whose name, description or id
// contains the query. Enabled commands sort before disabled ones, then by
// name.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.Name+" "+c.Description+" "+c.ID), q) {
			continue
		}
		hit := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		if c.Disabled != nil {
			hit.Disabled, hit.Reason = c.Disabled(m)
		}
		out = append(out, hit)
	}
	slices.SortFunc(out, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if a.Disabled {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Execute runs the command with the given id. Unknown or disabled commands
// report on the status bar instead of failing silently.
func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
