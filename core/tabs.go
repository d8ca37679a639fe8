package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"tuilab/widgets"
)

// Pane is one addressable region of a tab: it renders itself, may take
// focus, and may run background work through commands.
type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() byte
	Focusable() bool
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
	OnSelect() tea.Cmd
	OnDeselect() tea.Cmd
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// InputCapturer marks a pane (or tab) that wants raw keys while focused.
// While capture is on, global single-key shortcuts are suspended so typed
// text reaches the pane; esc still unfocuses.
type InputCapturer interface {
	CapturingInput() bool
}

// StaticPane shows fixed text. Tabs use it for hint panes and refresh the
// body with SetText.
type StaticPane struct {
	id     string
	title  string
	scope  string
	jump   byte
	focus  bool
	text   string
	height int
}

func NewStaticPane(id, title, scope string, jumpKey byte, focusable bool, text string, height int) *StaticPane {
	return &StaticPane{id: id, title: title, scope: scope, jump: jumpKey, focus: focusable, text: text, height: height}
}

func (p *StaticPane) ID() string      { return p.id }
func (p *StaticPane) Title() string   { return p.title }
func (p *StaticPane) Scope() string   { return p.scope }
func (p *StaticPane) JumpKey() byte   { return p.jump }
func (p *StaticPane) Focusable() bool { return p.focus }

func (p *StaticPane) Init() tea.Cmd              { return nil }
func (p *StaticPane) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *StaticPane) OnSelect() tea.Cmd          { return nil }
func (p *StaticPane) OnDeselect() tea.Cmd        { return nil }
func (p *StaticPane) OnFocus() tea.Cmd           { return nil }
func (p *StaticPane) OnBlur() tea.Cmd            { return nil }

func (p *StaticPane) View(width, height int, selected, focused bool) string {
	return widgets.Pane{
		Title:    p.title,
		Height:   p.height,
		Content:  p.text,
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

// SetText replaces the pane body.
func (p *StaticPane) SetText(text string) { p.text = text }

// PaneSpec declares a pane for NewGeneratedTab. A nil Factory yields a
// StaticPane from the remaining fields.
type PaneSpec struct {
	ID        string
	Title     string
	Scope     string
	JumpKey   byte
	Focusable bool
	Text      string
	Height    int
	Factory   func(spec PaneSpec) Pane
}

// LayoutBuilder arranges a tab's panes into its widget tree.
type LayoutBuilder func(host *PaneHost, m *Model) widgets.Widget

// GeneratedTab is the standard tab implementation: a pane host plus a
// layout function. All six demo tabs are built this way.
type GeneratedTab struct {
	id     string
	title  string
	host   PaneHost
	layout LayoutBuilder
}

func NewGeneratedTab(id, title string, specs []PaneSpec, layout LayoutBuilder) *GeneratedTab {
	panes := make([]Pane, 0, len(specs))
	for _, spec := range specs {
		if spec.Factory != nil {
			panes = append(panes, spec.Factory(spec))
		} else {
			panes = append(panes, NewStaticPane(spec.ID, spec.Title, spec.Scope, spec.JumpKey, spec.Focusable, spec.Text, spec.Height))
		}
	}
	return &GeneratedTab{id: id, title: title, host: NewPaneHost(panes...), layout: layout}
}

func (t *GeneratedTab) ID() string                { return t.id }
func (t *GeneratedTab) Title() string             { return t.title }
func (t *GeneratedTab) Scope() string             { return t.host.Scope() }
func (t *GeneratedTab) ActivePaneTitle() string   { return t.host.ActivePaneTitle() }
func (t *GeneratedTab) CapturingInput() bool      { return t.host.CapturingInput() }
func (t *GeneratedTab) JumpTargets() []JumpTarget { return t.host.JumpTargets() }

func (t *GeneratedTab) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}

func (t *GeneratedTab) InitTab(m *Model) tea.Cmd {
	return t.host.Init()
}

func (t *GeneratedTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}

// Update routes keys to the active pane only; every other message fans out
// to all panes so command completions land where the work started.
func (t *GeneratedTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return t.host.UpdateActive(m, msg)
	}
	return t.host.Broadcast(m, msg)
}

func (t *GeneratedTab) Build(m *Model) widgets.Widget {
	if t.layout == nil {
		return widgets.Pane{Title: t.title, Height: 10}
	}
	return t.layout(&t.host, m)
}

func normalizePaneJumpKey(key byte) byte {
	r := rune(key)
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	return byte(unicode.ToLower(r))
}

func normalizeJumpTargetKey(key string) byte {
	key = strings.TrimSpace(strings.ToLower(key))
	if len(key) != 1 {
		return 0
	}
	return normalizePaneJumpKey(key[0])
}
