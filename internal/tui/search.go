package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// handleSearchKey edits the query. Enter jumps to the best match,
// esc abandons the search.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchMode = false
		m.jumpTo(m.searchQuery)
		m.searchQuery = ""
		return m, nil
	case tea.KeyEsc:
		m.searchMode = false
		m.searchQuery = ""
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.searchQuery); len(r) > 0 {
			m.searchQuery = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.searchQuery += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// jumpTo selects the expiration whose date best matches query.
func (m *Model) jumpTo(query string) {
	if query == "" {
		return
	}
	idx, ok := bestMatch(query, m.chain.Dates())
	if !ok {
		m.statusMsg = fmt.Sprintf("no expiration matches %q", query)
		return
	}
	m.strategy.Select(m.state, idx)
	m.statusMsg = "→ " + m.chain.Expirations[idx].Date
	m.log.Debug().Str("query", query).Int("index", idx).Msg("search jump")
}

// bestMatch returns the index of the highest scoring fuzzy match.
// Ties keep the earlier expiration.
func bestMatch(query string, dates []string) (int, bool) {
	matches := fuzzy.Find(query, dates)
	if len(matches) == 0 {
		return 0, false
	}
	best := matches[0]
	for _, mt := range matches[1:] {
		if mt.Score > best.Score || (mt.Score == best.Score && mt.Index < best.Index) {
			best = mt
		}
	}
	return best.Index, true
}
