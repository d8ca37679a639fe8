package tabs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuilab/controls"
	"tuilab/core"
	"tuilab/widgets"
)

var (
	todoDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")).Strikethrough(true)
	todoPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	todoCursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

type todoInputPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	field   *controls.TextField
	focused bool
}

func newTodoInputPane(spec core.PaneSpec) *todoInputPane {
	return &todoInputPane{
		id:    spec.ID,
		title: spec.Title,
		scope: spec.Scope,
		jump:  spec.JumpKey,
		field: controls.NewTextField("New Task", "Enter Todo Task", ""),
	}
}

func (p *todoInputPane) ID() string      { return p.id }
func (p *todoInputPane) Title() string   { return p.title }
func (p *todoInputPane) Scope() string   { return p.scope }
func (p *todoInputPane) JumpKey() byte   { return p.jump }
func (p *todoInputPane) Focusable() bool { return true }
func (p *todoInputPane) Init() tea.Cmd   { return nil }

// CapturingInput reports true while the field is focused so plain letters
// type into the task instead of triggering app keys.
func (p *todoInputPane) CapturingInput() bool { return p.focused }

func (p *todoInputPane) OnSelect() tea.Cmd   { return nil }
func (p *todoInputPane) OnDeselect() tea.Cmd { return nil }
func (p *todoInputPane) OnFocus() tea.Cmd {
	p.focused = true
	return p.field.Focus()
}
func (p *todoInputPane) OnBlur() tea.Cmd {
	p.focused = false
	p.field.Blur()
	return nil
}

func (p *todoInputPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		_, cmd := p.field.Update(msg)
		return cmd
	}
	if !p.focused {
		return nil
	}
	if keyMsg.String() == "enter" {
		return p.submit()
	}
	_, cmd := p.field.Update(keyMsg)
	return cmd
}

func (p *todoInputPane) submit() tea.Cmd {
	svc := activeTodos()
	if svc == nil {
		return core.StatusCmd("Todo service not ready")
	}
	result, err := svc.Add(context.Background(), p.field.Value())
	if err != nil {
		return core.ErrorCmd(fmt.Errorf("add task: %w", err))
	}
	if !result.Added {
		return core.StatusCmd("Nothing to add")
	}
	p.field.Reset()
	if result.Warning != "" {
		return core.StatusCmd(result.Warning)
	}
	return core.StatusCmd("Added: " + result.Todo.Text)
}

func (p *todoInputPane) View(width, height int, selected, focused bool) string {
	p.field.SetWidth(max(10, width-16))
	body := strings.Join([]string{
		p.field.View(max(20, width-4), p.focused),
		"",
		"enter adds the task",
	}, "\n")
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

type todoListPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	cursor  int
	focused bool
}

func newTodoListPane(spec core.PaneSpec) *todoListPane {
	return &todoListPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey}
}

func (p *todoListPane) ID() string      { return p.id }
func (p *todoListPane) Title() string   { return p.title }
func (p *todoListPane) Scope() string   { return p.scope }
func (p *todoListPane) JumpKey() byte   { return p.jump }
func (p *todoListPane) Focusable() bool { return true }
func (p *todoListPane) Init() tea.Cmd   { return nil }

func (p *todoListPane) OnSelect() tea.Cmd   { return nil }
func (p *todoListPane) OnDeselect() tea.Cmd { return nil }
func (p *todoListPane) OnFocus() tea.Cmd {
	p.focused = true
	return nil
}
func (p *todoListPane) OnBlur() tea.Cmd {
	p.focused = false
	return nil
}

func (p *todoListPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "c":
		return p.clearCompleted()
	}
	if !p.focused {
		return nil
	}
	switch keyMsg.String() {
	case "j", "down":
		p.cursor++
	case "k", "up":
		p.cursor--
	case " ":
		return p.toggleAtCursor()
	}
	return nil
}

func (p *todoListPane) toggleAtCursor() tea.Cmd {
	svc := activeTodos()
	if svc == nil {
		return core.StatusCmd("Todo service not ready")
	}
	ctx := context.Background()
	todos, err := svc.List(ctx)
	if err != nil {
		return core.ErrorCmd(fmt.Errorf("list tasks: %w", err))
	}
	if len(todos) == 0 {
		return core.StatusCmd("No tasks yet")
	}
	p.clamp(len(todos))
	target := todos[p.cursor]
	if err := svc.Toggle(ctx, p.cursor, !target.Done); err != nil {
		return core.ErrorCmd(fmt.Errorf("toggle task: %w", err))
	}
	if target.Done {
		return core.StatusCmd("Reopened: " + target.Text)
	}
	return core.StatusCmd("Done: " + target.Text)
}

func (p *todoListPane) clearCompleted() tea.Cmd {
	svc := activeTodos()
	if svc == nil {
		return core.StatusCmd("Todo service not ready")
	}
	removed, err := svc.ClearCompleted(context.Background())
	if err != nil {
		return core.ErrorCmd(fmt.Errorf("clear completed: %w", err))
	}
	if removed == 0 {
		return core.StatusCmd("No completed tasks to clear")
	}
	return core.StatusCmd(fmt.Sprintf("Cleared %d completed task(s)", removed))
}

func (p *todoListPane) clamp(n int) {
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *todoListPane) View(width, height int, selected, focused bool) string {
	body := p.body(max(3, height-2))
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *todoListPane) body(height int) string {
	svc := activeTodos()
	if svc == nil {
		return "Todo service not ready."
	}
	todos, err := svc.List(context.Background())
	if err != nil {
		return "Task load failed: " + err.Error()
	}
	if len(todos) == 0 {
		return "No tasks yet. Add one above."
	}
	p.clamp(len(todos))
	lines := make([]string, 0, len(todos)+2)
	for i, t := range todos {
		box := "[ ]"
		style := todoPendingStyle
		if t.Done {
			box = "[x]"
			style = todoDoneStyle
		}
		prefix := "  "
		if p.focused && i == p.cursor {
			prefix = todoCursorStyle.Render("> ")
		}
		lines = append(lines, prefix+box+" "+style.Render(t.Text))
	}
	lines = append(lines, "", "space toggle  c clear completed")
	return strings.Join(lines, "\n")
}

type todoProgressPane struct {
	id    string
	title string
	scope string
	jump  byte
}

func newTodoProgressPane(spec core.PaneSpec) *todoProgressPane {
	return &todoProgressPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey}
}

func (p *todoProgressPane) ID() string                 { return p.id }
func (p *todoProgressPane) Title() string              { return p.title }
func (p *todoProgressPane) Scope() string              { return p.scope }
func (p *todoProgressPane) JumpKey() byte              { return p.jump }
func (p *todoProgressPane) Focusable() bool            { return false }
func (p *todoProgressPane) Init() tea.Cmd              { return nil }
func (p *todoProgressPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *todoProgressPane) OnSelect() tea.Cmd          { return nil }
func (p *todoProgressPane) OnDeselect() tea.Cmd        { return nil }
func (p *todoProgressPane) OnFocus() tea.Cmd           { return nil }
func (p *todoProgressPane) OnBlur() tea.Cmd            { return nil }

func (p *todoProgressPane) View(width, height int, selected, focused bool) string {
	body := p.body(max(20, width-4))
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *todoProgressPane) body(width int) string {
	svc := activeTodos()
	if svc == nil {
		return "Todo service not ready."
	}
	pending, done, err := svc.Counts(context.Background())
	if err != nil {
		return "Count load failed: " + err.Error()
	}
	total := pending + done
	pct := "-"
	if total > 0 {
		pct = strconv.Itoa(done*100/total) + "%"
	}
	return widgets.MetricRow{Metrics: []widgets.Metric{
		{Label: "Pending", Value: strconv.Itoa(pending)},
		{Label: "Done", Value: strconv.Itoa(done)},
		{Label: "Complete", Value: pct},
	}}.Render(width, 3)
}

// NewTodoTab wires the task input, the toggle list and the counts into
// one session-backed to-do board.
func NewTodoTab() core.Tab {
	specs := []core.PaneSpec{
		{ID: "input", Title: "New Task", Scope: "pane:todo:input", JumpKey: 'i', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newTodoInputPane(spec)
		}},
		{ID: "list", Title: "Tasks", Scope: "pane:todo:list", JumpKey: 'l', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newTodoListPane(spec)
		}},
		{ID: "progress", Title: "Progress", Scope: "pane:todo:progress", JumpKey: 'g', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return newTodoProgressPane(spec)
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.VStack{
			Widgets: []widgets.Widget{
				host.BuildPane("input", m),
				host.BuildPane("list", m),
				host.BuildPane("progress", m),
			},
			Ratios: []float64{0.2, 0.55, 0.25},
		}
	}
	return core.NewGeneratedTab("todo", "Todo", specs, layout)
}
