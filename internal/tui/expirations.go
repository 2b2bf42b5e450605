package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/chainview/internal/viewport"
	"github.com/Mr-Dark-debug/chainview/pkg/timeutil"
)

// minHeights is the line count every expiration needs in its current
// expand state.
func (m *Model) minHeights() []int {
	heights := make([]int, m.chain.Len())
	for i, exp := range m.chain.Expirations {
		heights[i] = viewport.ItemHeight(m.state.IsExpanded(i), exp.Rows())
	}
	return heights
}

// renderExpirationList draws the visible window of the scrolling list.
// Blocks that do not fit are cut at the bottom of the region.
func renderExpirationList(m *Model, height int) (string, frame) {
	alloc := m.strategy.Layout(m.state, m.minHeights(), height)
	fr := frame{start: alloc.Start, end: alloc.Start, total: m.chain.Len()}

	var blocks []string
	used := 0
	for i := alloc.Start; i < alloc.End && used < height; i++ {
		h := alloc.HeightOf(i)
		blocks = append(blocks, renderExpirationBlock(m, i, m.width, h))
		used += h
		fr.end = i + 1
	}

	return clipHeight(strings.Join(blocks, "\n"), height), fr
}

// renderExpirationBlock draws one bordered expiration of exactly
// height lines (more if height is below the block's minimum).
func renderExpirationBlock(m *Model, idx, width, height int) string {
	exp := m.chain.Expirations[idx]
	expanded := m.state.IsExpanded(idx)
	selected := idx == m.state.Cursor

	prefix := "[+] "
	if expanded {
		prefix = "[-] "
	}
	titleStyle := expTitleStyle
	style := blockStyle
	if selected {
		titleStyle = expTitleSelectedStyle
		style = blockSelectedStyle
	}

	inner := maxInt(width-style.GetHorizontalFrameSize(), 1)
	title := titleStyle.Render(prefix+timeutil.FormatExpiry(exp.Date, m.chain.LastUpdate)) +
		expMetaStyle.Render(fmt.Sprintf("  %d strikes", exp.Rows()))

	lines := []string{clipWidth(title, inner)}
	if expanded {
		lines = append(lines, clipWidth(renderOptionsTable(m, exp), inner))
	}

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(maxInt(height-style.GetVerticalBorderSize(), 1)).
		Render(strings.Join(lines, "\n"))
}
