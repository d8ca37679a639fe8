package controls

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Slider adjusts a bounded integer and shows its position on a track.
type Slider struct {
	label    string
	min, max int
	value    int
}

func NewSlider(label string, min, max, value int) *Slider {
	return &Slider{label: label, min: min, max: max, value: clampInt(value, min, max)}
}

func (s *Slider) Label() string { return s.label }

func (s *Slider) Value() int { return s.value }

func (s *Slider) SetValue(v int) { s.value = clampInt(v, s.min, s.max) }

func (s *Slider) Focus() tea.Cmd { return nil }

func (s *Slider) Blur() {}

func (s *Slider) Update(msg tea.Msg) (bool, tea.Cmd) {
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

func (s *Slider) View(width int, focused bool) string {
	head := renderLabel(s.label, focused) +
		valueStyle.Render(strconv.Itoa(s.value)) + labelStyle.Render("/"+strconv.Itoa(s.max))
	trackW := clampInt(width-2, 10, 40)
	pos := 0
	if s.max > s.min {
		pos = (s.value - s.min) * (trackW - 1) / (s.max - s.min)
	}
	knob := valueStyle.Render("●")
	if focused {
		knob = activeStyle.Render("●")
	}
	track := fillStyle.Render(strings.Repeat("─", pos)) + knob +
		trackStyle.Render(strings.Repeat("─", trackW-pos-1))
	return head + "\n" + track
}

// RangeSlider picks a low/high window inside fixed bounds. Space swaps
// which end the arrow keys move.
type RangeSlider struct {
	label    string
	min, max int
	lo, hi   int
	end      int // 0 moves lo, 1 moves hi
}

func NewRangeSlider(label string, min, max, lo, hi int) *RangeSlider {
	r := &RangeSlider{label: label, min: min, max: max}
	r.lo = clampInt(lo, min, max)
	r.hi = clampInt(hi, r.lo, max)
	return r
}

func (r *RangeSlider) Label() string { return r.label }

// Bounds returns the current low and high ends of the window.
func (r *RangeSlider) Bounds() (int, int) { return r.lo, r.hi }

func (r *RangeSlider) Focus() tea.Cmd { return nil }

func (r *RangeSlider) Blur() {}

func (r *RangeSlider) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		if r.end == 0 {
			r.lo = clampInt(r.lo-1, r.min, r.hi)
		} else {
			r.hi = clampInt(r.hi-1, r.lo, r.max)
		}
		return true, nil
	case "right", "l":
		if r.end == 0 {
			r.lo = clampInt(r.lo+1, r.min, r.hi)
		} else {
			r.hi = clampInt(r.hi+1, r.lo, r.max)
		}
		return true, nil
	case " ":
		r.end = 1 - r.end
		return true, nil
	}
	return false, nil
}

func (r *RangeSlider) View(width int, focused bool) string {
	head := renderLabel(r.label, focused) +
		valueStyle.Render(strconv.Itoa(r.lo)+".."+strconv.Itoa(r.hi)) +
		labelStyle.Render(" of "+strconv.Itoa(r.min)+".."+strconv.Itoa(r.max))
	trackW := clampInt(width-2, 10, 40)
	span := r.max - r.min
	loPos, hiPos := 0, trackW-1
	if span > 0 {
		loPos = (r.lo - r.min) * (trackW - 1) / span
		hiPos = (r.hi - r.min) * (trackW - 1) / span
	}
	loKnob := valueStyle.Render("●")
	hiKnob := valueStyle.Render("●")
	if focused {
		if r.end == 0 {
			loKnob = activeStyle.Render("●")
		} else {
			hiKnob = activeStyle.Render("●")
		}
	}
	var b strings.Builder
	b.WriteString(trackStyle.Render(strings.Repeat("─", loPos)))
	if hiPos == loPos {
		if r.end == 0 {
			b.WriteString(loKnob)
		} else {
			b.WriteString(hiKnob)
		}
	} else {
		b.WriteString(loKnob)
		b.WriteString(fillStyle.Render(strings.Repeat("─", hiPos-loPos-1)))
		b.WriteString(hiKnob)
	}
	b.WriteString(trackStyle.Render(strings.Repeat("─", trackW-hiPos-1)))
	return head + "\n" + b.String()
}
