package controls

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DateField edits a calendar date one segment at a time. Left and right
// pick the segment, up and down change it. The day wraps within the
// month and is pulled back when a month or year change shortens it.
type DateField struct {
	label            string
	year, month, day int
	seg              int // 0 year, 1 month, 2 day
}

func NewDateField(label string, value time.Time) *DateField {
	return &DateField{label: label, year: value.Year(), month: int(value.Month()), day: value.Day()}
}

func (d *DateField) Label() string { return d.label }

func (d *DateField) Value() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

func (d *DateField) Focus() tea.Cmd { return nil }

func (d *DateField) Blur() {}

func (d *DateField) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h":
		d.seg = (d.seg + 2) % 3
		return true, nil
	case "right", "l":
		d.seg = (d.seg + 1) % 3
		return true, nil
	case "up", "k":
		d.adjust(1)
		return true, nil
	case "down", "j":
		d.adjust(-1)
		return true, nil
	}
	return false, nil
}

func (d *DateField) adjust(n int) {
	switch d.seg {
	case 0:
		d.year = clampInt(d.year+n, 1900, 2100)
	case 1:
		d.month += n
		if d.month < 1 {
			d.month = 12
		}
		if d.month > 12 {
			d.month = 1
		}
	case 2:
		last := daysIn(d.year, d.month)
		d.day += n
		if d.day < 1 {
			d.day = last
		}
		if d.day > last {
			d.day = 1
		}
	}
	if last := daysIn(d.year, d.month); d.day > last {
		d.day = last
	}
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d *DateField) View(width int, focused bool) string {
	segs := []string{
		fmt.Sprintf("%04d", d.year),
		fmt.Sprintf("%02d", d.month),
		fmt.Sprintf("%02d", d.day),
	}
	for i := range segs {
		style := valueStyle
		if focused && i == d.seg {
			style = chipCursorStyle
		}
		segs[i] = style.Render(segs[i])
	}
	sep := labelStyle.Render("-")
	return renderLabel(d.label, focused) + segs[0] + sep + segs[1] + sep + segs[2]
}

// TimeField edits a wall-clock time as hour and minute segments. Hours
// wrap around midnight; minutes move in five minute steps.
type TimeField struct {
	label        string
	hour, minute int
	seg          int // 0 hour, 1 minute
}

func NewTimeField(label string, hour, minute int) *TimeField {
	return &TimeField{label: label, hour: clampInt(hour, 0, 23), minute: clampInt(minute, 0, 59)}
}

func (t *TimeField) Label() string { return t.label }

func (t *TimeField) Hour() int { return t.hour }

func (t *TimeField) Minute() int { return t.minute }

func (t *TimeField) Value() string { return fmt.Sprintf("%02d:%02d", t.hour, t.minute) }

func (t *TimeField) Focus() tea.Cmd { return nil }

func (t *TimeField) Blur() {}

func (t *TimeField) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "left", "h", "right", "l":
		t.seg = 1 - t.seg
		return true, nil
	case "up", "k":
		t.adjust(1)
		return true, nil
	case "down", "j":
		t.adjust(-1)
		return true, nil
	}
	return false, nil
}

func (t *TimeField) adjust(n int) {
	if t.seg == 0 {
		t.hour = (t.hour + n + 24) % 24
		return
	}
	t.minute = (t.minute + 5*n + 60) % 60
}

func (t *TimeField) View(width int, focused bool) string {
	hh := fmt.Sprintf("%02d", t.hour)
	mm := fmt.Sprintf("%02d", t.minute)
	hs, ms := valueStyle, valueStyle
	if focused {
		if t.seg == 0 {
			hs = chipCursorStyle
		} else {
			ms = chipCursorStyle
		}
	}
	return renderLabel(t.label, focused) + hs.Render(hh) + labelStyle.Render(":") + ms.Render(mm)
}
