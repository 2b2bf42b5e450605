package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Mr-Dark-debug/chainview/internal/chain"
	"github.com/Mr-Dark-debug/chainview/internal/nav"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Options configures a Model. The zero value is the scrolling variant
// with greeks shown and default window and page step; callers
// normally fill it from config.
type Options struct {
	Variant       nav.Variant
	VisibleWindow int
	PageStep      int
	HideGreeks    bool
	Logger        zerolog.Logger
}

// Model is the root BubbleTea model for the chain viewer.
// Navigation state lives in nav.State; rendering is delegated to
// component functions in separate files.
type Model struct {
	chain    *chain.Chain
	state    *nav.State
	strategy nav.Strategy
	dispatch nav.Dispatcher
	keys     keyMap
	help     help.Model
	log      zerolog.Logger

	// UI state
	width       int
	height      int
	searchMode  bool
	searchQuery string

	// Status
	statusMsg string
}

// NewModel creates a viewer for c. c must not be nil; an empty chain
// is fine and renders an empty state.
func NewModel(c *chain.Chain, opts Options) Model {
	strategy := nav.New(opts.Variant, opts.VisibleWindow)
	state := nav.NewStateFor(strategy, c.Len())
	state.ShowGreeks = !opts.HideGreeks

	h := help.New()
	h.Styles = help.Styles{
		Ellipsis:       hintDescStyle,
		ShortKey:       hintKeyStyle,
		ShortDesc:      hintDescStyle,
		ShortSeparator: hintDescStyle,
		FullKey:        hintKeyStyle,
		FullDesc:       hintDescStyle,
		FullSeparator:  hintDescStyle,
	}

	return Model{
		chain:    c,
		state:    state,
		strategy: strategy,
		dispatch: nav.NewDispatcher(strategy, opts.PageStep),
		keys:     newKeyMap(strategy.Variant()),
		help:     h,
		log:      opts.Logger,
	}
}

// State exposes the navigation state, mainly for tests and callers
// that want to report where the user left off.
func (m Model) State() *nav.State { return m.state }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	m.log.Debug().
		Str("symbol", m.chain.Symbol).
		Int("expirations", m.chain.Len()).
		Str("variant", string(m.strategy.Variant())).
		Msg("viewer started")
	return nil
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// ── Search mode ──

	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchQuery = ""
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// ── Navigation ──

	action := m.keys.actionFor(msg)
	if action == nav.ActionNone {
		return m, nil
	}
	m.statusMsg = ""

	if m.dispatch.Apply(m.state, action) {
		m.log.Debug().Msg("quit requested")
		return m, tea.Quit
	}

	m.log.Debug().
		Stringer("action", action).
		Int("cursor", m.state.Cursor).
		Int("scroll", m.state.Scroll).
		Bool("greeks", m.state.ShowGreeks).
		Msg("action applied")

	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	hints := m.help.View(m.keys)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(hints)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	var fr frame
	switch {
	case m.chain.Len() == 0:
		body = renderEmptyState(&m, bodyHeight)
	case m.strategy.Variant() == nav.VariantTabs:
		body, fr = renderTabs(&m, bodyHeight)
	default:
		body, fr = renderExpirationList(&m, bodyHeight)
	}

	footer := renderFooter(&m, hints, fr)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// frame records which items a render pass actually drew.
type frame struct {
	start int
	end   int // exclusive
	total int
}

// clipped reports whether items exist outside the drawn range.
func (f frame) clipped() bool {
	return f.start > 0 || f.end < f.total
}

// scrollLabel is the "Scroll: i/N" indicator, 1-based.
func (m *Model) scrollLabel() string {
	return fmt.Sprintf("Scroll: %d/%d", m.state.Cursor+1, m.state.Len())
}

func renderEmptyState(m *Model, height int) string {
	msg := emptyStateStyle.Render("No expirations in this chain.")
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
}
