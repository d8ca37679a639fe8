package core

import "testing"

func pickerFixture() *Picker {
	return NewPicker("panes", []PickerItem{
		{ID: "metrics", Label: "Metrics"},
		{ID: "trend", Label: "Trend Chart"},
		{ID: "table", Label: "Weekday Table"},
	})
}

func TestPickerFuzzyFilterPrefersPrefixMatches(t *testing.T) {
	p := pickerFixture()
	p.SetQuery("t")
	items := p.Items()
	if len(items) != 3 {
		t.Fatalf("all labels contain t, got %d", len(items))
	}
	if items[0].ID != "trend" {
		t.Fatalf("prefix match should rank first, got %s", items[0].ID)
	}
}

func TestPickerFilterDropsNonMatches(t *testing.T) {
	p := pickerFixture()
	p.SetQuery("week")
	items := p.Items()
	if len(items) != 1 || items[0].ID != "table" {
		t.Fatalf("unexpected filter result: %+v", items)
	}
	p.SetQuery("zzz")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no matches")
	}
}

func TestPickerHandleKeyTypesQueryAndSelects(t *testing.T) {
	p := pickerFixture()
	for _, k := range []string{"w", "e", "e", "k"} {
		res := p.HandleKey(k)
		if res.Action != PickerActionNone {
			t.Fatalf("typing should not move or select, got %v", res.Action)
		}
	}
	if p.Query() != "week" {
		t.Fatalf("query = %q", p.Query())
	}
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "table" {
		t.Fatalf("expected table selected, got %+v", res)
	}
}

func TestPickerBackspaceRestoresMatches(t *testing.T) {
	p := pickerFixture()
	p.SetQuery("weekz")
	if len(p.Items()) != 0 {
		t.Fatalf("expected no matches for weekz")
	}
	_ = p.HandleKey("backspace")
	if len(p.Items()) != 1 {
		t.Fatalf("backspace should restore the week match")
	}
}

func TestPickerCursorClampsToFilteredItems(t *testing.T) {
	p := pickerFixture()
	_ = p.HandleKey("j")
	_ = p.HandleKey("j")
	if p.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", p.Cursor())
	}
	p.SetQuery("metrics")
	if p.Cursor() != 0 {
		t.Fatalf("cursor should clamp after filtering, got %d", p.Cursor())
	}
	res := p.HandleKey("esc")
	if res.Action != PickerActionCancelled {
		t.Fatalf("esc should cancel")
	}
}
