package controls

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

func TestSelectEnterAppliesCursor(t *testing.T) {
	s := NewSelect("Favorite color", []string{"Red", "Green", "Blue", "Black"}, 2)
	if s.Value() != "Blue" {
		t.Fatalf("default value = %q, want Blue", s.Value())
	}

	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.Value() != "Blue" {
		t.Fatal("moving the cursor must not change the applied value")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Value() != "Green" {
		t.Fatalf("after enter value = %q, want Green", s.Value())
	}
}

func TestSelectCursorWrapsAtEnds(t *testing.T) {
	s := NewSelect("Color", []string{"Red", "Green"}, 0)
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Value() != "Green" {
		t.Fatalf("left from the first chip should wrap to the last, got %q", s.Value())
	}
}

func TestRadioArrowsMoveSelectionDirectly(t *testing.T) {
	r := NewRadio("T-shirt size", []string{"S", "M", "L", "XL"}, 2)
	if r.Value() != "L" {
		t.Fatalf("default = %q, want L", r.Value())
	}
	r.Update(tea.KeyMsg{Type: tea.KeyRight})
	if r.Value() != "XL" {
		t.Fatalf("right: %q, want XL", r.Value())
	}
	r.Update(tea.KeyMsg{Type: tea.KeyRight})
	if r.Value() != "S" {
		t.Fatalf("right past the end should wrap, got %q", r.Value())
	}
}

func TestMultiSelectSpaceToggles(t *testing.T) {
	m := NewMultiSelect("Pizza toppings", []string{"Onion", "Corn", "Paneer", "Mushroom"}, []int{2})
	if diff := cmp.Diff([]string{"Paneer"}, m.Values()); diff != "" {
		t.Fatalf("default values mismatch (-want +got):\n%s", diff)
	}

	m.Update(key(' ')) // cursor starts on Onion
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(key(' ')) // Corn
	if diff := cmp.Diff([]string{"Onion", "Corn", "Paneer"}, m.Values()); diff != "" {
		t.Fatalf("values keep declaration order (-want +got):\n%s", diff)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(key(' ')) // Paneer off
	if diff := cmp.Diff([]string{"Onion", "Corn"}, m.Values()); diff != "" {
		t.Fatalf("toggle off mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiSelectEmptyValues(t *testing.T) {
	m := NewMultiSelect("Toppings", []string{"Onion"}, nil)
	if got := m.Values(); len(got) != 0 {
		t.Fatalf("no picks should yield no values, got %v", got)
	}
}

func TestSelectViewMarksChips(t *testing.T) {
	s := NewSelect("Color", []string{"Red", "Blue"}, 1)
	out := ansi.Strip(s.View(40, false))
	if !strings.Contains(out, "Color: ") || !strings.Contains(out, " Red ") || !strings.Contains(out, " Blue ") {
		t.Fatalf("chip row missing parts: %q", out)
	}
}

func TestRadioViewShowsDot(t *testing.T) {
	r := NewRadio("Size", []string{"S", "M"}, 1)
	out := ansi.Strip(r.View(40, false))
	if !strings.Contains(out, "( ) S") || !strings.Contains(out, "(•) M") {
		t.Fatalf("radio row mismatch: %q", out)
	}
}
