package tabs

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/controls"
	"tuilab/core"
	"tuilab/internal/loan"
	"tuilab/widgets"
)

const scheduleMonths = 12

// loanState holds the last submitted calculation. Stepper edits buffer in
// the controls and only land here when Calculate EMI is pressed.
type loanState struct {
	input     loan.Input
	result    loan.Result
	schedule  []loan.ScheduleRow
	submitted bool
}

type loanResultPane struct {
	id    string
	title string
	scope string
	jump  byte
	state *loanState
}

func newLoanResultPane(spec core.PaneSpec, state *loanState) *loanResultPane {
	return &loanResultPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey, state: state}
}

func (p *loanResultPane) ID() string                 { return p.id }
func (p *loanResultPane) Title() string              { return p.title }
func (p *loanResultPane) Scope() string              { return p.scope }
func (p *loanResultPane) JumpKey() byte              { return p.jump }
func (p *loanResultPane) Focusable() bool            { return false }
func (p *loanResultPane) Init() tea.Cmd              { return nil }
func (p *loanResultPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *loanResultPane) OnSelect() tea.Cmd          { return nil }
func (p *loanResultPane) OnDeselect() tea.Cmd        { return nil }
func (p *loanResultPane) OnFocus() tea.Cmd           { return nil }
func (p *loanResultPane) OnBlur() tea.Cmd            { return nil }

func (p *loanResultPane) View(width, height int, selected, focused bool) string {
	body := p.body(max(20, width-4))
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *loanResultPane) body(width int) string {
	if !p.state.submitted {
		return "Fill the form and press Calculate EMI."
	}
	banner := "Estimated EMI: " + formatMoney(p.state.result.Monthly)
	cards := widgets.MetricRow{Metrics: []widgets.Metric{
		{Label: "Monthly", Value: formatMoney(p.state.result.Monthly)},
		{Label: "Total payable", Value: formatMoney(p.state.result.Total)},
		{Label: "Total interest", Value: formatMoney(p.state.result.Interest)},
	}}.Render(width, 3)
	return banner + "\n\n" + cards
}

type loanSchedulePane struct {
	id    string
	title string
	scope string
	jump  byte
	state *loanState
}

func newLoanSchedulePane(spec core.PaneSpec, state *loanState) *loanSchedulePane {
	return &loanSchedulePane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey, state: state}
}

func (p *loanSchedulePane) ID() string                 { return p.id }
func (p *loanSchedulePane) Title() string              { return p.title }
func (p *loanSchedulePane) Scope() string              { return p.scope }
func (p *loanSchedulePane) JumpKey() byte              { return p.jump }
func (p *loanSchedulePane) Focusable() bool            { return false }
func (p *loanSchedulePane) Init() tea.Cmd              { return nil }
func (p *loanSchedulePane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *loanSchedulePane) OnSelect() tea.Cmd          { return nil }
func (p *loanSchedulePane) OnDeselect() tea.Cmd        { return nil }
func (p *loanSchedulePane) OnFocus() tea.Cmd           { return nil }
func (p *loanSchedulePane) OnBlur() tea.Cmd            { return nil }

func (p *loanSchedulePane) View(width, height int, selected, focused bool) string {
	body := p.body(max(20, width-4), max(3, height-2))
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *loanSchedulePane) body(width, height int) string {
	if !p.state.submitted {
		return "The first year's amortization appears here\nafter you calculate."
	}
	rows := make([][]string, 0, len(p.state.schedule))
	for _, row := range p.state.schedule {
		rows = append(rows, []string{
			strconv.Itoa(row.Month),
			formatMoney(row.Payment),
			formatMoney(row.Principal),
			formatMoney(row.Interest),
			formatMoney(row.Balance),
		})
	}
	return widgets.DataTable{
		Columns: []string{"Month", "Payment", "Principal", "Interest", "Balance"},
		Rows:    rows,
	}.Render(width, height)
}

func submitLoan(state *loanState, principal, rate *controls.FloatStepper, months *controls.IntStepper) tea.Cmd {
	in := loan.Input{
		Principal:  principal.Value(),
		AnnualRate: rate.Value(),
		TermMonths: months.Value(),
	}
	if err := in.Validate(); err != nil {
		return core.ErrorCmd(fmt.Errorf("loan input: %w", err))
	}
	result, err := loan.Calculate(in)
	if err != nil {
		return core.ErrorCmd(fmt.Errorf("calculate emi: %w", err))
	}
	schedule, err := loan.Schedule(in, scheduleMonths)
	if err != nil {
		return core.ErrorCmd(fmt.Errorf("amortize: %w", err))
	}
	state.input = in
	state.result = result
	state.schedule = schedule
	state.submitted = true
	return core.StatusCmd("Estimated EMI: " + formatMoney(result.Monthly))
}

// NewFormTab is the submit-gated EMI calculator: three steppers and a
// button; results update only on submit.
func NewFormTab() core.Tab {
	state := &loanState{}
	principal := controls.NewFloatStepper("Principal (₹)", 0, loan.MaxPrincipal, 10000, 500000)
	rate := controls.NewFloatStepper("Annual interest rate (%)", 0, loan.MaxAnnualRate, 0.1, 9.0)
	months := controls.NewIntStepper("Tenure (months)", 1, loan.MaxTermMonths, 60)
	submit := controls.NewButton("Calculate EMI", func() tea.Cmd {
		return submitLoan(state, principal, rate, months)
	})
	group := controls.NewGroup(principal, rate, months, submit)

	specs := []core.PaneSpec{
		{ID: "fields", Title: "Simple EMI Calculator", Scope: "pane:loan:fields", JumpKey: 'e', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newFormPane(spec, group, func() []string {
				return []string{"Edits apply when you press Calculate EMI."}
			})
		}},
		{ID: "result", Title: "Result", Scope: "pane:loan:result", JumpKey: 'r', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return newLoanResultPane(spec, state)
		}},
		{ID: "schedule", Title: "First Year", Scope: "pane:loan:schedule", JumpKey: 's', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return newLoanSchedulePane(spec, state)
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{
				host.BuildPane("fields", m),
				widgets.VStack{
					Widgets: []widgets.Widget{
						host.BuildPane("result", m),
						host.BuildPane("schedule", m),
					},
					Ratios: []float64{0.4, 0.6},
				},
			},
			Ratios: []float64{0.42, 0.58},
			Gap:    1,
		}
	}
	return core.NewGeneratedTab("loan", "Form", specs, layout)
}
