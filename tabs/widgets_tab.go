package tabs

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/controls"
	"tuilab/core"
	"tuilab/widgets"
)

// formPane hosts one controls.Group and re-renders a reflection of the
// current values on every pass. While focused it captures raw keys so
// typing reaches the active control instead of global shortcuts.
type formPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	group   *controls.Group
	reflect func() []string
	focused bool
}

func newFormPane(spec core.PaneSpec, group *controls.Group, reflect func() []string) *formPane {
	return &formPane{
		id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey,
		group: group, reflect: reflect,
	}
}

func (p *formPane) ID() string      { return p.id }
func (p *formPane) Title() string   { return p.title }
func (p *formPane) Scope() string   { return p.scope }
func (p *formPane) JumpKey() byte   { return p.jump }
func (p *formPane) Focusable() bool { return true }
func (p *formPane) Init() tea.Cmd   { return nil }

func (p *formPane) CapturingInput() bool { return p.focused }

func (p *formPane) OnSelect() tea.Cmd   { return nil }
func (p *formPane) OnDeselect() tea.Cmd { return nil }
func (p *formPane) OnFocus() tea.Cmd {
	p.focused = true
	return p.group.Focus()
}
func (p *formPane) OnBlur() tea.Cmd {
	p.focused = false
	p.group.Blur()
	return nil
}

func (p *formPane) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if !p.focused {
			return nil
		}
		_, cmd := p.group.Update(keyMsg)
		return cmd
	}
	_, cmd := p.group.Update(msg)
	return cmd
}

func (p *formPane) View(width, height int, selected, focused bool) string {
	body := p.group.View(max(20, width-4), p.focused)
	if p.reflect != nil {
		body = strings.Join(append([]string{body, ""}, p.reflect()...), "\n")
	}
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// NewWidgetsTab is the widget tour: three columns of live controls, each
// reflecting its values in the same render pass.
func NewWidgetsTab() core.Tab {
	name := controls.NewTextField("Name", "Your name", "Manish")
	updates := controls.NewToggle("Email me updates", true)
	advanced := controls.NewCheckbox("Show advanced options", false)
	textGroup := controls.NewGroup(name, updates, advanced)

	age := controls.NewIntStepper("Age", 0, 120, 42)
	rating := controls.NewSlider("Satisfaction", 0, 10, 7)
	window := controls.NewRangeSlider("Window", 0, 100, 25, 75)
	rangeGroup := controls.NewGroup(age, rating, window)

	color := controls.NewSelect("Favorite color", []string{"Red", "Green", "Blue", "Black"}, 2)
	toppings := controls.NewMultiSelect("Pizza toppings", []string{"Onion", "Corn", "Paneer", "Mushroom"}, []int{2})
	size := controls.NewRadio("T-shirt size", []string{"S", "M", "L", "XL"}, 2)
	dob := controls.NewDateField("Date of birth", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	alarm := controls.NewTimeField("Alarm", 7, 30)
	choiceGroup := controls.NewGroup(color, toppings, size, dob, alarm)

	specs := []core.PaneSpec{
		{ID: "text", Title: "Text & Toggles", Scope: "pane:widgets:text", JumpKey: 't', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newFormPane(spec, textGroup, func() []string {
				lines := []string{"Hello, " + strings.TrimSpace(name.Value())}
				if advanced.Checked() {
					lines = append(lines, "Advanced options, just for example")
				}
				return lines
			})
		}},
		{ID: "ranges", Title: "Numbers & Ranges", Scope: "pane:widgets:ranges", JumpKey: 'n', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newFormPane(spec, rangeGroup, func() []string {
				lo, hi := window.Bounds()
				return []string{fmt.Sprintf("Age: %d, Rating: %d, Window: (%d, %d)", age.Value(), rating.Value(), lo, hi)}
			})
		}},
		{ID: "choices", Title: "Choices & Time", Scope: "pane:widgets:choices", JumpKey: 'c', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newFormPane(spec, choiceGroup, func() []string {
				picked := strings.Join(toppings.Values(), ", ")
				if picked == "" {
					picked = "None"
				}
				return []string{
					fmt.Sprintf("Color=%s, Size=%s, DOB=%s, Alarm=%s",
						color.Value(), size.Value(), dob.Value().Format("2006-01-02"), alarm.Value()),
					"Toppings chosen: " + picked,
				}
			})
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{
				host.BuildPane("text", m),
				host.BuildPane("ranges", m),
				host.BuildPane("choices", m),
			},
			Ratios: []float64{0.34, 0.33, 0.33},
			Gap:    1,
		}
	}
	return core.NewGeneratedTab("widgets", "Widgets", specs, layout)
}
