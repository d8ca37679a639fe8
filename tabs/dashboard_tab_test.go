package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDashboardTabRendersDeterministically(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRune('6')) // dashboard tab

	first := plainView(m)
	second := plainView(m)
	if first != second {
		t.Fatal("dashboard render is not stable across frames")
	}
	for _, want := range []string{
		"Total sales",
		"Seed 42, 30 days",
		"Slot A: sales",
		"space expands",
		"Sales, last 30 days",
	} {
		if !strings.Contains(first, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, first)
		}
	}
}

func TestDashboardTrendTogglesSeriesAndView(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRune('6'))
	m = send(t, m, special(tea.KeyRight)) // select the trend pane

	m = sendWait(t, m, keyRune('m'))
	view := plainView(m)
	if !strings.Contains(view, "Revenue, last 30 days") {
		t.Fatalf("series toggle missing:\n%s", view)
	}
	if !strings.Contains(view, "Trend: revenue") {
		t.Fatalf("series toggle status missing:\n%s", view)
	}

	m = sendWait(t, m, keyRune('b'))
	if !strings.Contains(plainView(m), "Trend view: line") {
		t.Fatalf("view toggle status missing:\n%s", plainView(m))
	}
}

func TestDashboardWeekdayToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRune('6'))
	m = send(t, m, special(tea.KeyRight), special(tea.KeyRight)) // weekday pane

	view := plainView(m)
	if !strings.Contains(view, "Mon") {
		t.Fatalf("weekday table missing:\n%s", view)
	}
	m = sendWait(t, m, keyRune('w'))
	if !strings.Contains(plainView(m), "Weekday view: bars") {
		t.Fatalf("weekday toggle status missing:\n%s", plainView(m))
	}
}

func TestDashboardExpandersToggleIndependently(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRune('6'))
	// panes cycle overview, trend, weekday, raw, notes, ...
	m = send(t, m, special(tea.KeyRight), special(tea.KeyRight), special(tea.KeyRight))

	m = sendWait(t, m, keyRune(' '))
	view := plainView(m)
	if !strings.Contains(view, "▾ Raw data") {
		t.Fatalf("raw expander did not open:\n%s", view)
	}
	if !strings.Contains(view, "▸ About this data") {
		t.Fatalf("notes expander should stay closed:\n%s", view)
	}

	m = sendWait(t, m, keyRune(' '))
	if !strings.Contains(plainView(m), "▸ Raw data") {
		t.Fatalf("raw expander did not close:\n%s", plainView(m))
	}
}

func TestDashboardSlotSwapShowsExactlyOneBody(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRune('6'))
	// slot is the last pane; walk left wraps to it in one step
	m = send(t, m, special(tea.KeyLeft))

	view := plainView(m)
	if !strings.Contains(view, "Slot A: sales") || strings.Contains(view, "Slot B: revenue") {
		t.Fatalf("expected only slot A before swap:\n%s", view)
	}

	m = sendWait(t, m, keyRune('s'))
	view = plainView(m)
	if !strings.Contains(view, "Slot B: revenue") || strings.Contains(view, "Slot A: sales") {
		t.Fatalf("expected only slot B after swap:\n%s", view)
	}
	if !strings.Contains(view, "Slot: revenue sparkline") {
		t.Fatalf("swap status missing:\n%s", view)
	}
}

func TestDashboardJumpPickerFocusesPane(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, keyRune('6'))

	m = sendWait(t, m, keyRune('v')) // open the jump picker
	m = sendWait(t, m, keyRune('t')) // jump straight to the trend pane

	if !strings.Contains(plainView(m), "Focused pane: Trend") {
		t.Fatalf("jump did not focus the trend pane:\n%s", plainView(m))
	}
}
