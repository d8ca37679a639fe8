package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"tab:a"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:a") {
		t.Fatalf("expected ctrl+k in tab:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "tab:b") {
		t.Fatalf("did not expect ctrl+k in tab:b")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "tab:b") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestApplyActionKeybindingsOverridesKeys(t *testing.T) {
	defaults := DefaultKeyBindings()
	applied := ApplyActionKeybindings(defaults, map[string][]string{
		"quit": {"ctrl+q"},
	})
	reg := NewKeyRegistry(applied)
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "tab:x") {
		t.Fatalf("default quit key should be replaced")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlQ}, "quit", "tab:x") {
		t.Fatalf("override quit key should match")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}}, "jump", "tab:x") {
		t.Fatalf("untouched actions keep default keys")
	}
}

func TestDefaultKeybindingsByActionKeepsFirstEntry(t *testing.T) {
	byAction := DefaultKeybindingsByAction(DefaultKeyBindings())
	if got := byAction["quit"]; len(got) != 1 || got[0] != "q" {
		t.Fatalf("quit keys = %v", got)
	}
	if got := byAction["counter-increment"]; len(got) != 2 {
		t.Fatalf("counter-increment keys = %v", got)
	}
	// pane-nav appears four times in defaults; only the first wins.
	if got := byAction["pane-nav"]; len(got) != 1 || got[0] != "left" {
		t.Fatalf("pane-nav keys = %v", got)
	}
}
