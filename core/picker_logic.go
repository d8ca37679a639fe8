package core

import (
	"slices"
	"strings"
)

// PickerItem is one selectable row. Search, when set, is the haystack the
// filter runs against instead of the label.
type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is the filter-and-select state machine behind the modal pickers.
// It is render-agnostic; screens own presentation.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

// Items returns the rows matching the current query, best match first.
func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return slices.Clone(p.filtered)
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = slices.Clone(items)
	p.refilter()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.refilter()
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := min(max(p.cursor, 0), len(p.filtered)-1)
	return p.filtered[idx], true
}

// HandleKey folds one key press into the picker state. Unrecognized keys
// are ignored; printable ones extend the query.
func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{}
	}
	switch keyName {
	case "k", "up":
		return p.moveCursor(-1)
	case "j", "down":
		return p.moveCursor(1)
	case "enter":
		if item, ok := p.CurrentItem(); ok {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
		return PickerResult{}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if p.query != "" {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{}
	default:
		if len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127 {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{}
	}
}

func (p *Picker) moveCursor(delta int) PickerResult {
	if len(p.filtered) == 0 {
		p.cursor = 0
		return PickerResult{}
	}
	next := min(max(p.cursor+delta, 0), len(p.filtered)-1)
	if next == p.cursor {
		return PickerResult{}
	}
	p.cursor = next
	return PickerResult{Action: PickerActionMoved}
}

type rankedItem struct {
	item  PickerItem
	score int
	order int
}

func (p *Picker) refilter() {
	q := strings.TrimSpace(p.query)
	ranked := make([]rankedItem, 0, len(p.items))
	for i, item := range p.items {
		haystack := strings.TrimSpace(item.Search)
		if haystack == "" {
			haystack = item.Label
		}
		score, ok := subsequenceScore(haystack, q)
		if !ok {
			continue
		}
		ranked = append(ranked, rankedItem{item: item, score: score, order: i})
	}
	slices.SortFunc(ranked, func(a, b rankedItem) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return a.order - b.order
	})
	p.filtered = p.filtered[:0]
	for _, r := range ranked {
		p.filtered = append(p.filtered, r.item)
	}
	p.cursor = min(max(p.cursor, 0), max(len(p.filtered)-1, 0))
}

// subsequenceScore matches query as a case-insensitive subsequence of
// label. Matches score one point per rune plus bonuses for starting at the
// front, for runs of adjacent hits, and for an exact label match.
func subsequenceScore(label, query string) (int, bool) {
	if query == "" {
		return 0, true
	}
	l := strings.ToLower(label)
	q := strings.ToLower(query)

	score := len(q)
	prev := -2
	at := 0
	for i := 0; i < len(q); i++ {
		j := strings.IndexByte(l[at:], q[i])
		if j < 0 {
			return 0, false
		}
		j += at
		if i == 0 && j == 0 {
			score += 10
		}
		if j == prev+1 {
			score += 3
		}
		prev = j
		at = j + 1
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return score, true
}
