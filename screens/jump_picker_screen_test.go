package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"tuilab/core"
)

func jumpFixture() *JumpPickerScreen {
	return NewJumpPickerScreen([]core.JumpTarget{
		{Key: "t", Label: "Trend"},
		{Key: "w", Label: "By Weekday"},
	})
}

func TestJumpPickerKeyJumpsImmediately(t *testing.T) {
	s := jumpFixture()
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if !pop {
		t.Fatalf("expected screen to close")
	}
	if cmd == nil {
		t.Fatalf("expected jump command")
	}
	msg, ok := cmd().(core.JumpTargetSelectedMsg)
	if !ok {
		t.Fatalf("unexpected msg %T", cmd())
	}
	if msg.Key != "w" {
		t.Fatalf("key = %q, want w", msg.Key)
	}
}

func TestJumpPickerEnterSelectsCursorRow(t *testing.T) {
	s := jumpFixture()
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd == nil {
		t.Fatalf("expected selection to close the screen with a command")
	}
	msg, ok := cmd().(core.JumpTargetSelectedMsg)
	if !ok || msg.Key != "t" {
		t.Fatalf("expected first target, got %#v", cmd())
	}
}

func TestJumpPickerEscCancels(t *testing.T) {
	s := jumpFixture()
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd != nil {
		t.Fatalf("esc should close without a command")
	}
}

func TestJumpPickerViewListsTargets(t *testing.T) {
	out := ansi.Strip(jumpFixture().View(60, 20))
	for _, want := range []string{"[t] Trend", "[w] By Weekday", "esc cancels"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}
