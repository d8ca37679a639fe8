package tabs

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCounterTabAdjustKeys(t *testing.T) {
	m, deps := newTestModel(t)
	m = send(t, m, keyRune('2'))         // counter tab
	m = send(t, m, special(tea.KeyDown)) // select the controls pane

	for i := 0; i < 3; i++ {
		m = sendWait(t, m, keyRune('+'))
	}
	m = sendWait(t, m, keyRune('-'))

	if !strings.Contains(plainView(m), "Counter: 2") {
		t.Fatalf("status missing after adjustments:\n%s", plainView(m))
	}
	value, err := deps.Store.Counter(context.Background())
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if value != 2 {
		t.Fatalf("counter = %d, want 2", value)
	}
}

func TestCounterTabResetKey(t *testing.T) {
	m, deps := newTestModel(t)
	ctx := context.Background()
	if _, err := deps.Store.AdjustCounter(ctx, 5); err != nil {
		t.Fatalf("seed counter: %v", err)
	}

	m = send(t, m, keyRune('2'))
	m = send(t, m, special(tea.KeyDown))
	m = sendWait(t, m, keyRune('r'))

	if !strings.Contains(plainView(m), "Counter reset") {
		t.Fatalf("reset status missing:\n%s", plainView(m))
	}
	value, err := deps.Store.Counter(ctx)
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if value != 0 {
		t.Fatalf("counter = %d after reset, want 0", value)
	}
}

func TestCounterTabButtonRow(t *testing.T) {
	m, deps := newTestModel(t)
	m = send(t, m, keyRune('2'))
	m = send(t, m, special(tea.KeyDown))
	m = send(t, m, special(tea.KeyEnter))     // focus the button row
	m = sendWait(t, m, special(tea.KeyEnter)) // press Increment

	value, err := deps.Store.Counter(context.Background())
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if value != 1 {
		t.Fatalf("counter = %d after pressing Increment, want 1", value)
	}
}

func TestCounterGoesNegative(t *testing.T) {
	m, deps := newTestModel(t)
	m = send(t, m, keyRune('2'))
	m = send(t, m, special(tea.KeyDown))
	m = sendWait(t, m, keyRune('-'))

	value, err := deps.Store.Counter(context.Background())
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if value != -1 {
		t.Fatalf("counter = %d, want -1", value)
	}
	if !strings.Contains(plainView(m), "Counter: -1") {
		t.Fatalf("status missing:\n%s", plainView(m))
	}
}
