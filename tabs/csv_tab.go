package tabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tuilab/core"
	"tuilab/internal/preview"
	"tuilab/widgets"
)

type csvScannedMsg struct {
	files []string
	err   error
}

type csvLoadedMsg struct {
	name  string
	table preview.Table
	err   error
}

func scanCSVCmd() tea.Cmd {
	svc := activePreview()
	return func() tea.Msg {
		if svc == nil {
			return csvScannedMsg{err: errors.New("preview service not ready")}
		}
		files, err := svc.ListFiles()
		return csvScannedMsg{files: files, err: err}
	}
}

func loadCSVCmd(name string) tea.Cmd {
	svc := activePreview()
	return func() tea.Msg {
		if svc == nil {
			return csvLoadedMsg{name: name, err: errors.New("preview service not ready")}
		}
		table, err := svc.Load(name)
		return csvLoadedMsg{name: name, table: table, err: err}
	}
}

// csvState is shared between the file picker and the preview pane so a
// load completing in one shows up in the other on the same frame.
type csvState struct {
	files      []string
	scanned    bool
	scanErr    error
	table      preview.Table
	loaded     bool
	loadedName string
	loadErr    error
}

type fileItem struct{ name string }

func (i fileItem) Title() string       { return i.name }
func (i fileItem) Description() string { return "" }
func (i fileItem) FilterValue() string { return i.name }

type csvFilesPane struct {
	id      string
	title   string
	scope   string
	jump    byte
	state   *csvState
	list    list.Model
	focused bool
}

func newCSVFilesPane(spec core.PaneSpec, state *csvState) *csvFilesPane {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return &csvFilesPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey, state: state, list: l}
}

func (p *csvFilesPane) ID() string      { return p.id }
func (p *csvFilesPane) Title() string   { return p.title }
func (p *csvFilesPane) Scope() string   { return p.scope }
func (p *csvFilesPane) JumpKey() byte   { return p.jump }
func (p *csvFilesPane) Focusable() bool { return true }
func (p *csvFilesPane) Init() tea.Cmd   { return nil }

func (p *csvFilesPane) OnSelect() tea.Cmd   { return nil }
func (p *csvFilesPane) OnDeselect() tea.Cmd { return nil }
func (p *csvFilesPane) OnFocus() tea.Cmd {
	p.focused = true
	return nil
}
func (p *csvFilesPane) OnBlur() tea.Cmd {
	p.focused = false
	return nil
}

// ensureScanned runs the first directory listing synchronously at render
// time; rescans requested with r go through scanCSVCmd instead.
func (p *csvFilesPane) ensureScanned() {
	if p.state.scanned {
		return
	}
	p.state.scanned = true
	svc := activePreview()
	if svc == nil {
		p.state.scanErr = errors.New("preview service not ready")
		return
	}
	p.state.files, p.state.scanErr = svc.ListFiles()
	p.syncItems()
}

func (p *csvFilesPane) syncItems() {
	items := make([]list.Item, 0, len(p.state.files))
	for _, name := range p.state.files {
		items = append(items, fileItem{name: name})
	}
	p.list.SetItems(items)
}

func (p *csvFilesPane) selectedFile() (string, bool) {
	item, ok := p.list.SelectedItem().(fileItem)
	if !ok {
		return "", false
	}
	return item.name, true
}

func (p *csvFilesPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case csvScannedMsg:
		p.state.scanned = true
		p.state.files = msg.files
		p.state.scanErr = msg.err
		p.syncItems()
		if msg.err != nil {
			return core.ErrorCmd(fmt.Errorf("scan csv dir: %w", msg.err))
		}
		return core.StatusCmd(fmt.Sprintf("Found %d CSV file(s)", len(msg.files)))
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return scanCSVCmd()
		case "enter":
			if !p.focused {
				return nil
			}
			name, ok := p.selectedFile()
			if !ok {
				return core.StatusCmd("No CSV files to load")
			}
			return loadCSVCmd(name)
		}
		if !p.focused {
			return nil
		}
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return cmd
	}
	return nil
}

func (p *csvFilesPane) View(width, height int, selected, focused bool) string {
	p.ensureScanned()
	body := p.body(max(20, width-4), max(3, height-2))
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *csvFilesPane) body(width, height int) string {
	if p.state.scanErr != nil {
		return "Scan failed: " + p.state.scanErr.Error() + "\n\nr rescans the directory."
	}
	if len(p.state.files) == 0 {
		return "No CSV files found.\n\nDrop files in the preview directory\nand press r to rescan."
	}
	listHeight := max(1, height-2)
	p.list.SetSize(width, listHeight)
	return p.list.View() + "\n\nenter load  r rescan"
}

type csvPreviewPane struct {
	id    string
	title string
	scope string
	jump  byte
	state *csvState
}

func newCSVPreviewPane(spec core.PaneSpec, state *csvState) *csvPreviewPane {
	return &csvPreviewPane{id: spec.ID, title: spec.Title, scope: spec.Scope, jump: spec.JumpKey, state: state}
}

func (p *csvPreviewPane) ID() string      { return p.id }
func (p *csvPreviewPane) Title() string   { return p.title }
func (p *csvPreviewPane) Scope() string   { return p.scope }
func (p *csvPreviewPane) JumpKey() byte   { return p.jump }
func (p *csvPreviewPane) Focusable() bool { return false }
func (p *csvPreviewPane) Init() tea.Cmd   { return nil }

func (p *csvPreviewPane) OnSelect() tea.Cmd   { return nil }
func (p *csvPreviewPane) OnDeselect() tea.Cmd { return nil }
func (p *csvPreviewPane) OnFocus() tea.Cmd    { return nil }
func (p *csvPreviewPane) OnBlur() tea.Cmd     { return nil }

func (p *csvPreviewPane) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(csvLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		p.state.loaded = false
		p.state.loadedName = loaded.name
		p.state.loadErr = loaded.err
		return core.ErrorCmd(fmt.Errorf("read %s: %w", loaded.name, loaded.err))
	}
	p.state.loaded = true
	p.state.loadedName = loaded.name
	p.state.loadErr = nil
	p.state.table = loaded.table
	return core.StatusCmd("Loaded " + loaded.table.Summary())
}

func (p *csvPreviewPane) View(width, height int, selected, focused bool) string {
	body := p.body(max(20, width-4), max(3, height-2))
	return widgets.Pane{
		Title:    p.title,
		Height:   height,
		Content:  core.ClipHeight(body, max(3, height-2)),
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func (p *csvPreviewPane) body(width, height int) string {
	if p.state.loadErr != nil {
		return "Failed to read CSV: " + p.state.loadErr.Error()
	}
	if !p.state.loaded {
		return "No file uploaded yet. Try uploading a CSV\nfile to preview it here."
	}
	svc := activePreview()
	if svc == nil {
		return "Preview service not ready."
	}
	header := fmt.Sprintf("Loaded: %s (%s)", p.state.loadedName, p.state.table.Summary())
	grid := widgets.DataTable{
		Columns: p.state.table.Columns,
		Rows:    svc.HeadRows(p.state.table),
	}.Render(width, max(2, height-2))
	return strings.Join([]string{header, "", grid}, "\n")
}

// NewCSVTab previews CSV files from the configured directory, first ten
// rows only, mirroring a file-upload preview flow.
func NewCSVTab() core.Tab {
	state := &csvState{}
	specs := []core.PaneSpec{
		{ID: "files", Title: "Files", Scope: "pane:data:files", JumpKey: 'f', Focusable: true, Factory: func(spec core.PaneSpec) core.Pane {
			return newCSVFilesPane(spec, state)
		}},
		{ID: "preview", Title: "Preview", Scope: "pane:data:preview", JumpKey: 'p', Focusable: false, Factory: func(spec core.PaneSpec) core.Pane {
			return newCSVPreviewPane(spec, state)
		}},
	}
	layout := func(host *core.PaneHost, m *core.Model) widgets.Widget {
		return widgets.HStack{
			Widgets: []widgets.Widget{
				host.BuildPane("files", m),
				host.BuildPane("preview", m),
			},
			Ratios: []float64{0.35, 0.65},
			Gap:    1,
		}
	}
	return core.NewGeneratedTab("data", "CSV", specs, layout)
}
