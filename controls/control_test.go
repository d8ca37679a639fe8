package controls

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGroupCyclesFocusWithTab(t *testing.T) {
	g := NewGroup(
		NewTextField("Name", "Your name", "Manish"),
		NewToggle("Email me updates", true),
		NewButton("Save", nil),
	)
	g.Focus()

	handled, _ := g.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !handled || g.ActiveIndex() != 1 {
		t.Fatalf("tab: handled=%v active=%d, want focus on control 1", handled, g.ActiveIndex())
	}
	g.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if g.ActiveIndex() != 0 {
		t.Fatalf("shift+tab: active=%d, want 0", g.ActiveIndex())
	}
	g.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if g.ActiveIndex() != 2 {
		t.Fatalf("shift+tab from the first control should wrap to the last, got %d", g.ActiveIndex())
	}
}

func TestGroupEnterAdvancesPastTextField(t *testing.T) {
	g := NewGroup(
		NewTextField("Name", "", ""),
		NewToggle("Updates", false),
	)
	g.Focus()

	handled, _ := g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled || g.ActiveIndex() != 1 {
		t.Fatalf("enter on a text field should move focus on: handled=%v active=%d", handled, g.ActiveIndex())
	}
}

func TestGroupRoutesKeysToActiveControl(t *testing.T) {
	toggle := NewToggle("Updates", true)
	g := NewGroup(NewTextField("Name", "", ""), toggle)
	g.Focus()
	g.Cycle(1)

	g.Update(key(' '))
	if toggle.On() {
		t.Fatal("space on the active toggle should flip it off")
	}
}

func TestGroupEnterPressesButton(t *testing.T) {
	pressed := false
	g := NewGroup(
		NewToggle("Updates", false),
		NewButton("Go", func() tea.Cmd {
			pressed = true
			return nil
		}),
	)
	g.Focus()
	g.Update(tea.KeyMsg{Type: tea.KeyTab})

	handled, _ := g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled || !pressed {
		t.Fatalf("enter on the button: handled=%v pressed=%v", handled, pressed)
	}
}

func TestTextFieldTypesAndDeclinesEnter(t *testing.T) {
	f := NewTextField("Name", "Your name", "Manish")
	f.Focus()

	handled, _ := f.Update(key('!'))
	if !handled || f.Value() != "Manish!" {
		t.Fatalf("typed rune: handled=%v value=%q", handled, f.Value())
	}
	handled, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if handled {
		t.Fatal("enter must be declined so the owner can advance focus")
	}
}

func TestToggleKeys(t *testing.T) {
	tg := NewToggle("Updates", true)
	tg.Update(key(' '))
	if tg.On() {
		t.Fatal("space should flip the toggle off")
	}
	tg.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !tg.On() {
		t.Fatal("right should switch the toggle on")
	}
	tg.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if tg.On() {
		t.Fatal("left should switch the toggle off")
	}
}

func TestGroupViewStacksControls(t *testing.T) {
	g := NewGroup(
		NewTextField("Name", "", "Manish"),
		NewCheckbox("Show advanced options", false),
		NewToggle("Email me updates", true),
	)
	out := ansi.Strip(g.View(40, false))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("want one line per control, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "Name: ") || !strings.Contains(out, "[ ] Show advanced options") {
		t.Fatalf("missing control content:\n%s", out)
	}
}
