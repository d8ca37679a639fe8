package controls

import (
	"math"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// IntStepper adjusts a bounded integer one step at a time with the left
// and right keys (minus and plus also work).
type IntStepper struct {
	label    string
	min, max int
	value    int
}

func NewIntStepper(label string, min, max, value int) *IntStepper {
	return &IntStepper{label: label, min: min, max: max, value: clampInt(value, min, max)}
}

func (s *IntStepper) Label() string { return s.label }

func (s *IntStepper) Value() int { return s.value }

func (s *IntStepper) SetValue(v int) { s.value = clampInt(v, s.min, s.max) }

func (s *IntStepper) Focus() tea.Cmd { return nil }

func (s *IntStepper) Blur() {}

func (s *IntStepper) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h", "-":
		s.SetValue(s.value - 1)
		return true, nil
	case "right", "l", "+", "=":
		s.SetValue(s.value + 1)
		return true, nil
	}
	return false, nil
}

func (s *IntStepper) View(width int, focused bool) string {
	arrows := chipStyle
	if focused {
		arrows = chipCursorStyle
	}
	return renderLabel(s.label, focused) +
		arrows.Render("◂ ") + valueStyle.Render(strconv.Itoa(s.value)) + arrows.Render(" ▸")
}

// FloatStepper adjusts a bounded float by a fixed step. Values snap to
// step multiples so repeated presses never accumulate drift.
type FloatStepper struct {
	label    string
	min, max float64
	step     float64
	value    float64
}

func NewFloatStepper(label string, min, max, step, value float64) *FloatStepper {
	s := &FloatStepper{label: label, min: min, max: max, step: step}
	s.value = clampFloat(value, min, max)
	return s
}

func (s *FloatStepper) Label() string { return s.label }

func (s *FloatStepper) Value() float64 { return s.value }

func (s *FloatStepper) SetValue(v float64) {
	if s.step > 0 {
		v = math.Round(v/s.step) * s.step
	}
	s.value = clampFloat(v, s.min, s.max)
}

func (s *FloatStepper) Focus() tea.Cmd { return nil }

func (s *FloatStepper) Blur() {}

func (s *FloatStepper) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h", "-":
		s.SetValue(s.value - s.step)
		return true, nil
	case "right", "l", "+", "=":
		s.SetValue(s.value + s.step)
		return true, nil
	}
	return false, nil
}

func (s *FloatStepper) View(width int, focused bool) string {
	arrows := chipStyle
	if focused {
		arrows = chipCursorStyle
	}
	return renderLabel(s.label, focused) +
		arrows.Render("◂ ") + valueStyle.Render(strconv.FormatFloat(s.value, 'f', -1, 64)) + arrows.Render(" ▸")
}
