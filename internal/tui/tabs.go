package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderTabs draws the tab strip followed by the selected expiration,
// which takes the rest of the region.
func renderTabs(m *Model, height int) (string, frame) {
	strip := renderTabStrip(m)
	rest := maxInt(height-lipgloss.Height(strip), 1)

	alloc := m.strategy.Layout(m.state, m.minHeights(), rest)
	fr := frame{start: alloc.Start, end: alloc.End, total: m.chain.Len()}
	if alloc.Len() == 0 {
		return strip, fr
	}

	block := renderExpirationBlock(m, alloc.Start, m.width, alloc.HeightOf(alloc.Start))
	return clipHeight(lipgloss.JoinVertical(lipgloss.Left, strip, block), height), fr
}

// renderTabStrip renders one tab per expiration date. When the tabs are
// wider than the screen the strip starts late enough to keep the
// selected tab visible.
func renderTabStrip(m *Model) string {
	dates := m.chain.Dates()
	tabs := make([]string, len(dates))
	for i, d := range dates {
		if i == m.state.Cursor {
			tabs[i] = tabActiveStyle.Render(d)
		} else {
			tabs[i] = tabStyle.Render(d)
		}
	}
	sep := tabSepStyle.Render("│")

	start := m.state.Cursor
	used := lipgloss.Width(tabs[start])
	for start > 0 {
		w := lipgloss.Width(tabs[start-1]) + lipgloss.Width(sep)
		if used+w > m.width {
			break
		}
		used += w
		start--
	}

	var parts []string
	for i := start; i < len(tabs); i++ {
		if i > start {
			parts = append(parts, sep)
		}
		parts = append(parts, tabs[i])
	}
	return clipWidth(lipgloss.JoinHorizontal(lipgloss.Top, parts...), m.width)
}
