package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/chainview/pkg/timeutil"
)

// renderHeader produces the top bar:
//
//	AAPL  |  $187.50  |  2024-03-15 16:00 UTC  |  6 expirations
func renderHeader(m *Model) string {
	sep := headerSepStyle.Render(" │ ")

	parts := []string{
		headerBrandStyle.Render(m.chain.Symbol),
		sep,
		headerPriceStyle.Render("$" + m.chain.LastPrice.StringFixed(2)),
		sep,
		headerMetaStyle.Render(timeutil.FormatUpdate(m.chain.LastUpdate)),
		sep,
		headerMetaStyle.Render(fmt.Sprintf("%d expirations", m.chain.Len())),
	}
	if !m.state.ShowGreeks {
		parts = append(parts, sep, headerMetaStyle.Render("greeks off"))
	}

	content := clipWidth(strings.Join(parts, ""), maxInt(m.width-2, 1))

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar: search input, status
// message or scroll indicator on the left, key help on the right.
func renderFooter(m *Model, hints string, fr frame) string {
	var left string

	switch {
	case m.searchMode:
		cursor := searchCursorStyle.Render(" ")
		left = searchBarStyle.Render(fmt.Sprintf("/ %s%s", m.searchQuery, cursor))
		hints = renderHints([]hint{
			{"enter", "jump"},
			{"esc", "cancel"},
		})
	case m.statusMsg != "":
		left = statusStyle.Render(m.statusMsg)
	case fr.clipped():
		left = statusAccentStyle.Render(m.scrollLabel())
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints)
	if gap < 0 {
		gap = 0
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", gap), hints)
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
