package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPaneRendersChromeAndContent(t *testing.T) {
	out := Pane{Title: "Files", Height: 5, Content: "a.csv\nb.csv"}.Render(20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if !strings.Contains(ansi.Strip(lines[0]), "Files") {
		t.Fatalf("title missing from top border: %q", lines[0])
	}
	if !strings.Contains(out, "a.csv") || !strings.Contains(out, "b.csv") {
		t.Fatalf("content rows missing")
	}
	for _, glyph := range []string{"╭", "╮", "╰", "╯"} {
		if !strings.Contains(out, glyph) {
			t.Fatalf("expected border glyph %s", glyph)
		}
	}
}

func TestPaneTitlePrefixTracksState(t *testing.T) {
	selected := ansi.Strip(Pane{Title: "P", Selected: true}.Render(20, 4))
	if !strings.Contains(selected, "▶ P") {
		t.Fatalf("selected marker missing: %q", selected)
	}
	focused := ansi.Strip(Pane{Title: "P", Selected: true, Focused: true}.Render(20, 4))
	if !strings.Contains(focused, "● P") {
		t.Fatalf("focused marker missing: %q", focused)
	}
}

func TestPaneRowsShareWidth(t *testing.T) {
	out := Pane{Title: "W", Height: 4, Content: "x"}.Render(18, 4)
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w != 18 {
			t.Fatalf("row %d width = %d, want 18", i, w)
		}
	}
}
