package tabs

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/core"
	"tuilab/internal/config"
	"tuilab/screens"
)

func Tabs() []core.Tab {
	return []core.Tab{
		NewWidgetsTab(),
		NewCounterTab(),
		NewCSVTab(),
		NewFormTab(),
		NewTodoTab(),
		NewDashboardTab(),
	}
}

// ConfigureModel binds the services, installs the modal builders and
// registers the command palette entries.
func ConfigureModel(m *core.Model, deps Deps) {
	if m == nil {
		return
	}
	bindRuntime(deps)

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenJumpPickerModal = func(model *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPickerScreen(targets)
	}

	RegisterCommands(m.CommandRegistry())
}

func RegisterCommands(reg *core.CommandRegistry) {
	tabCommands := []struct {
		id, name, desc, label string
		index                 int
	}{
		{"switch-widgets", "Switch to widgets", "Activate widgets tab", "Widgets", 0},
		{"switch-counter", "Switch to counter", "Activate counter tab", "Counter", 1},
		{"switch-csv", "Switch to csv", "Activate CSV preview tab", "CSV", 2},
		{"switch-form", "Switch to form", "Activate EMI form tab", "Form", 3},
		{"switch-todo", "Switch to todo", "Activate todo tab", "Todo", 4},
		{"switch-dashboard", "Switch to dashboard", "Activate dashboard tab", "Dashboard", 5},
	}
	for _, tc := range tabCommands {
		index, label := tc.index, tc.label
		reg.Register(core.Command{
			ID:          tc.id,
			Name:        tc.name,
			Description: tc.desc,
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(index)
				return core.StatusCmd(label)
			},
		})
	}

	reg.Register(core.Command{
		ID:          "counter-increment",
		Name:        "Increment counter",
		Description: "Add one to the session counter",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return adjustCounter(1)
		},
	})
	reg.Register(core.Command{
		ID:          "counter-decrement",
		Name:        "Decrement counter",
		Description: "Subtract one from the session counter",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return adjustCounter(-1)
		},
	})
	reg.Register(core.Command{
		ID:          "counter-reset",
		Name:        "Reset counter",
		Description: "Set the session counter back to zero",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return resetCounter()
		},
	})

	reg.Register(core.Command{
		ID:          "todo-clear-completed",
		Name:        "Clear completed tasks",
		Description: "Remove every done task from the list",
		Scopes:      []string{"*"},
		Disabled: func(m *core.Model) (bool, string) {
			svc := activeTodos()
			if svc == nil {
				return true, "Todo service not ready"
			}
			_, done, err := svc.Counts(context.Background())
			if err != nil {
				return true, "Todo counts unavailable"
			}
			if done == 0 {
				return true, "No completed tasks"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			svc := activeTodos()
			if svc == nil {
				return core.StatusCmd("Todo service not ready")
			}
			removed, err := svc.ClearCompleted(context.Background())
			if err != nil {
				return core.ErrorCmd(fmt.Errorf("clear completed: %w", err))
			}
			return core.StatusCmd(fmt.Sprintf("Cleared %d completed task(s)", removed))
		},
	})

	reg.Register(core.Command{
		ID:          "csv-rescan",
		Name:        "Rescan CSV directory",
		Description: "Re-list CSV files in the preview directory",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SwitchTab(2)
			return scanCSVCmd()
		},
	})

	reg.Register(core.Command{
		ID:          "config-save",
		Name:        "Save configuration",
		Description: "Write current settings, including key bindings, to the config file",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			cfg := activeConfig()
			if len(cfg.Keys) == 0 {
				cfg.Keys = core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
			}
			if err := config.Save(cfg); err != nil {
				return core.ErrorCmd(fmt.Errorf("save config: %w", err))
			}
			return core.StatusCmd("Configuration saved")
		},
	})

	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Exit the application",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
