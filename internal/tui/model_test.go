package tui

import (
	"fmt"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Mr-Dark-debug/chainview/internal/chain"
	"github.com/Mr-Dark-debug/chainview/internal/nav"
)

func loadFixture(t *testing.T) *chain.Chain {
	t.Helper()
	f, err := os.Open("../chain/testdata/two_expirations.json")
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	defer f.Close()
	c, err := chain.DecodeJSON(f)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return c
}

// syntheticChain builds n expirations with one strike each.
func syntheticChain(n int) *chain.Chain {
	c := &chain.Chain{
		Symbol:     "SPY",
		LastPrice:  decimal.NewFromInt(500),
		LastUpdate: "2024-03-15",
	}
	for i := 0; i < n; i++ {
		c.Expirations = append(c.Expirations, chain.Expiration{
			Date:    fmt.Sprintf("2024-%02d-15", i%12+1),
			Options: []chain.OptionPair{{Strike: decimal.NewFromInt(500)}},
		})
	}
	return c
}

func newSizedModel(t *testing.T, c *chain.Chain, opts Options, w, h int) Model {
	t.Helper()
	opts.Logger = zerolog.Nop()
	m := NewModel(c, opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

var specialKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"tab":    tea.KeyTab,

	"backspace": tea.KeyBackspace,
}

func keyMsg(k string) tea.KeyMsg {
	if kt, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestViewBeforeResize(t *testing.T) {
	m := NewModel(loadFixture(t), Options{Logger: zerolog.Nop()})
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q before the first resize", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("expected a command from q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q should quit")
	}
}

func TestHeaderShowsChainContext(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	view := m.View()
	for _, want := range []string{"AAPL", "$187.50", "2024-03-15 16:00 UTC", "2 expirations"} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestExpandIndicator(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	if !strings.Contains(m.View(), "[+] 2024-03-22 (7d)") {
		t.Fatalf("scroll variant should start collapsed:\n%s", m.View())
	}

	m, _ = press(t, m, "e")
	view := m.View()
	if !strings.Contains(view, "[-] 2024-03-22") {
		t.Errorf("expected expanded marker after e:\n%s", view)
	}
	if !strings.Contains(view, "[+] 2024-04-19") {
		t.Errorf("second expiration should stay collapsed:\n%s", view)
	}
	if !strings.Contains(view, "AAPL24032") {
		t.Errorf("expanded table should list the call symbol:\n%s", view)
	}
}

func TestZeroOptionsShowGreeks(t *testing.T) {
	m := NewModel(loadFixture(t), Options{Logger: zerolog.Nop()})
	if !m.State().ShowGreeks {
		t.Error("zero Options should start with greeks shown")
	}

	hidden := NewModel(loadFixture(t), Options{HideGreeks: true, Logger: zerolog.Nop()})
	if hidden.State().ShowGreeks {
		t.Error("HideGreeks should start with greeks hidden")
	}
}

func TestToggleGreeksEndToEnd(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 260, 40)
	m, _ = press(t, m, "e")

	if !strings.Contains(m.View(), "Delta") {
		t.Fatal("greek columns should be visible by default")
	}

	m, _ = press(t, m, "g")
	if m.State().ShowGreeks {
		t.Fatal("g should hide greeks")
	}
	view := m.View()
	for _, col := range []string{"Delta", "Gamma", "Vega"} {
		if strings.Contains(view, col) {
			t.Errorf("%s column still rendered with greeks off", col)
		}
	}
	if !strings.Contains(view, "Strike") || !strings.Contains(view, "Volume") {
		t.Error("non-greek columns should remain")
	}

	m, _ = press(t, m, "g")
	if !strings.Contains(m.View(), "Delta") {
		t.Error("second g should restore greeks")
	}
	if m.State().Cursor != 0 || !m.State().IsExpanded(0) {
		t.Error("toggling greeks must not move the cursor or collapse items")
	}
}

func TestNavigationWraps(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)

	m, _ = press(t, m, "down")
	if m.State().Cursor != 1 {
		t.Fatalf("cursor = %d after down, want 1", m.State().Cursor)
	}
	m, _ = press(t, m, "down")
	if m.State().Cursor != 0 {
		t.Errorf("cursor = %d after wrapping down, want 0", m.State().Cursor)
	}
	m, _ = press(t, m, "up")
	if m.State().Cursor != 1 {
		t.Errorf("cursor = %d after wrapping up, want 1", m.State().Cursor)
	}
}

func TestPagingClamps(t *testing.T) {
	m := newSizedModel(t, syntheticChain(12), Options{}, 200, 40)

	m, _ = press(t, m, "pgdown", "pgdown", "pgdown")
	if m.State().Cursor != 11 {
		t.Errorf("cursor = %d after paging past the end, want 11", m.State().Cursor)
	}
	if s := m.State(); s.Scroll > s.Cursor || s.Cursor >= s.Scroll+10 {
		t.Errorf("cursor %d outside window starting at %d", s.Cursor, s.Scroll)
	}
	m, _ = press(t, m, "pgup", "pgup", "pgup")
	if m.State().Cursor != 0 || m.State().Scroll != 0 {
		t.Errorf("cursor/scroll = %d/%d after paging up, want 0/0", m.State().Cursor, m.State().Scroll)
	}
}

func TestScrollIndicator(t *testing.T) {
	m := newSizedModel(t, syntheticChain(12), Options{}, 200, 20)
	if !strings.Contains(m.View(), "Scroll: 1/12") {
		t.Errorf("expected scroll indicator when items are clipped:\n%s", m.View())
	}

	small := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	if strings.Contains(small.View(), "Scroll:") {
		t.Error("no indicator when everything fits")
	}
}

func TestScrollIndicatorCountsDrawnBlocks(t *testing.T) {
	// Four items fit the visible window but not a ten-line terminal.
	m := newSizedModel(t, syntheticChain(4), Options{}, 200, 10)
	if !strings.Contains(m.View(), "Scroll: 1/4") {
		t.Errorf("expected scroll indicator when blocks are clipped by height:\n%s", m.View())
	}

	tall := newSizedModel(t, syntheticChain(4), Options{}, 200, 40)
	if strings.Contains(tall.View(), "Scroll:") {
		t.Error("no indicator when every block is drawn")
	}
}

func TestViewFitsHeight(t *testing.T) {
	m := newSizedModel(t, syntheticChain(12), Options{}, 120, 24)
	m, _ = press(t, m, "e", "down", "e")
	if got := len(strings.Split(m.View(), "\n")); got > 24 {
		t.Errorf("view is %d lines, terminal has 24", got)
	}
}

func TestSearchJump(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)

	m, cmd := press(t, m, "/", "0", "4", "-", "1", "9", "q")
	if cmd != nil {
		t.Fatal("keys typed into the search box must not quit")
	}
	m, _ = press(t, m, "backspace")
	m, _ = press(t, m, "enter")
	if m.State().Cursor != 1 {
		t.Errorf("cursor = %d after searching 04-19, want 1", m.State().Cursor)
	}
	if !strings.Contains(m.View(), "2024-04-19") {
		t.Error("status should name the selected date")
	}
}

func TestSearchEscCancels(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	m, _ = press(t, m, "/", "0", "4", "esc")
	if m.searchMode || m.State().Cursor != 0 {
		t.Errorf("esc should leave search without moving (cursor %d)", m.State().Cursor)
	}
}

func TestSearchNoMatch(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	m, _ = press(t, m, "/", "x", "y", "z", "enter")
	if m.State().Cursor != 0 {
		t.Error("cursor moved on a failed search")
	}
	if !strings.Contains(m.statusMsg, "no expiration matches") {
		t.Errorf("unexpected status %q", m.statusMsg)
	}
}

func TestEmptyChain(t *testing.T) {
	m := newSizedModel(t, &chain.Chain{Symbol: "XYZ"}, Options{}, 120, 30)
	m, cmd := press(t, m, "down", "pgdown", "e", "g")
	if cmd != nil {
		t.Fatal("navigation on an empty chain should not produce commands")
	}
	if m.State().Cursor != 0 || m.State().Scroll != 0 {
		t.Error("empty chain cursor must stay at 0")
	}
	if !strings.Contains(m.View(), "No expirations") {
		t.Errorf("expected empty state:\n%s", m.View())
	}
}

func TestTabVariant(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{Variant: nav.VariantTabs}, 260, 40)

	view := m.View()
	if !strings.Contains(view, "[-] 2024-03-22") {
		t.Errorf("tab variant should start expanded:\n%s", view)
	}
	if strings.Contains(view, "[+] 2024-04-19") || strings.Contains(view, "[-] 2024-04-19") {
		t.Error("only the selected expiration is drawn as a block")
	}

	m, _ = press(t, m, "right")
	if m.State().Cursor != 1 {
		t.Fatalf("cursor = %d after right, want 1", m.State().Cursor)
	}
	m, _ = press(t, m, "pgdown")
	if m.State().Cursor != 1 {
		t.Error("paging should do nothing in the tab variant")
	}
	m, _ = press(t, m, "tab")
	if m.State().Cursor != 0 {
		t.Errorf("tab should wrap to the first expiration, got %d", m.State().Cursor)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newSizedModel(t, loadFixture(t), Options{}, 200, 40)
	short := m.View()
	m, _ = press(t, m, "?")
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	if !strings.Contains(m.View(), "page down") || strings.Contains(short, "page down") {
		t.Error("full help should list paging keys that the short help omits")
	}
}
