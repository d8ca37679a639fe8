package controls

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestSliderClampsAtBounds(t *testing.T) {
	s := NewSlider("Satisfaction", 0, 10, 7)
	for i := 0; i < 5; i++ {
		s.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if s.Value() != 10 {
		t.Fatalf("value = %d, want clamp at 10", s.Value())
	}
	for i := 0; i < 12; i++ {
		s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if s.Value() != 0 {
		t.Fatalf("value = %d, want clamp at 0", s.Value())
	}
}

func TestSliderViewShowsKnobAndValue(t *testing.T) {
	s := NewSlider("Satisfaction", 0, 10, 7)
	out := ansi.Strip(s.View(30, false))
	if !strings.Contains(out, "7/10") || !strings.Contains(out, "●") {
		t.Fatalf("slider view mismatch:\n%s", out)
	}
}

func TestRangeSliderEndsCannotCross(t *testing.T) {
	r := NewRangeSlider("Window", 0, 100, 25, 75)
	r.Update(key(' ')) // move the high end
	for i := 0; i < 60; i++ {
		r.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	lo, hi := r.Bounds()
	if lo != 25 || hi != 25 {
		t.Fatalf("bounds = (%d,%d), want the high end stopped at the low end", lo, hi)
	}

	r.Update(key(' ')) // back to the low end
	for i := 0; i < 10; i++ {
		r.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	lo, hi = r.Bounds()
	if lo != 25 || hi != 25 {
		t.Fatalf("bounds = (%d,%d), the low end must not pass the high end", lo, hi)
	}
}

func TestIntStepperStepsAndClamps(t *testing.T) {
	s := NewIntStepper("Age", 0, 120, 42)
	s.Update(key('+'))
	if s.Value() != 43 {
		t.Fatalf("plus: %d, want 43", s.Value())
	}
	s.Update(key('-'))
	s.Update(key('-'))
	if s.Value() != 41 {
		t.Fatalf("minus twice: %d, want 41", s.Value())
	}
	s.SetValue(-5)
	if s.Value() != 0 {
		t.Fatalf("SetValue below min: %d, want 0", s.Value())
	}
	s.SetValue(200)
	if s.Value() != 120 {
		t.Fatalf("SetValue above max: %d, want 120", s.Value())
	}
}

func TestFloatStepperSnapsToStep(t *testing.T) {
	s := NewFloatStepper("Annual rate %", 0, 100, 0.1, 9.0)
	for i := 0; i < 3; i++ {
		s.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if math.Abs(s.Value()-9.3) > 1e-9 {
		t.Fatalf("value = %v, want 9.3", s.Value())
	}
	out := ansi.Strip(s.View(40, false))
	if !strings.Contains(out, "9.3") {
		t.Fatalf("view should print the snapped value: %q", out)
	}

	big := NewFloatStepper("Principal", 0, 10000000, 10000, 500000)
	big.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if big.Value() != 490000 {
		t.Fatalf("principal step: %v, want 490000", big.Value())
	}
}
