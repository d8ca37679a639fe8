package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tuilab/widgets"
)

// View lays out header, status bar, tab body and footer, then squeezes the
// result to exactly the terminal size. Open screens composite over the body
// as a centered popup.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)

	chrome := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(footer)
	bodyHeight := max(0, m.height-chrome)

	var body string
	if len(m.tabs) > 0 && bodyHeight > 0 {
		body = m.tabs[m.activeTab].Build(&m).Render(max(1, m.width-2), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(max(20, m.width-12), max(8, m.height-8))
		body = widgets.RenderPopup(body, popup, m.width-2, bodyHeight)
	}

	main := strings.TrimSuffix(strings.Join([]string{header, status, padRows(body, bodyHeight)}, "\n"), "\n")
	main = padRows(main, chrome-lipgloss.Height(footer)+bodyHeight)
	return appStyle.
		Width(max(1, m.width)).
		MaxWidth(max(1, m.width)).
		Render(padRows(main+"\n"+footer, max(1, m.height)))
}

func renderHeader(m Model) string {
	labels := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			labels[i] = activeTabStyle.Render(label)
		} else {
			labels[i] = inactiveTabStyle.Render(label)
		}
	}
	name := headerAppStyle.Render("tuilab")
	strip := ansi.Truncate(tabSepStyle.Render(" ")+strings.Join(labels, tabSepStyle.Render("│")), max(1, m.width), "")

	gap := 1
	if used := ansi.StringWidth(name) + ansi.StringWidth(strip); used+1 < m.width {
		gap = m.width - used
	}
	row := name + strings.Repeat(" ", gap) + strip
	return fillBar(headerBarStyle, colorMantle, max(1, m.width), row)
}

// padRows clips or blank-pads a block to exactly height rows.
func padRows(s string, height int) string {
	if height <= 0 {
		return ""
	}
	rows := strings.Split(s, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}
