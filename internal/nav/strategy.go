package nav

import (
	"fmt"

	"github.com/Mr-Dark-debug/chainview/internal/viewport"
)

// Variant names a navigation model.
type Variant string

const (
	// VariantScroll is a scrolling list with a cursor; items start
	// collapsed.
	VariantScroll Variant = "scroll"
	// VariantTabs is a tab strip showing one expiration at a time;
	// items start expanded.
	VariantTabs Variant = "tabs"
)

// ParseVariant accepts the config/flag spelling of a variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantScroll, VariantTabs:
		return Variant(s), nil
	case "tab":
		return VariantTabs, nil
	case "", "list", "scrolling":
		return VariantScroll, nil
	default:
		return "", fmt.Errorf("unknown navigation variant %q (want scroll or tabs)", s)
	}
}

// Strategy is how the selection advances and which items are visible.
// The toggles live on State and are shared by every strategy.
type Strategy interface {
	Variant() Variant
	// ExpandedByDefault is the initial expand flag for every item.
	ExpandedByDefault() bool
	// Move advances the cursor by delta, wrapping around.
	Move(s *State, delta int)
	// Page advances the cursor by delta, clamping at both ends.
	Page(s *State, delta int)
	// Select puts the cursor on index, clamped to the list.
	Select(s *State, index int)
	// Layout computes the visible items and their heights for a
	// region of the given height. It never mutates s.
	Layout(s *State, minHeights []int, height int) viewport.Allocation
}

// New returns the strategy for v. window is the scroll reconciliation
// window for the scrolling variant; values below 1 use the default.
func New(v Variant, window int) Strategy {
	if v == VariantTabs {
		return TabStrip{}
	}
	if window < 1 {
		window = viewport.DefaultVisibleWindow
	}
	return Scrolling{Window: window}
}

// NewStateFor creates the initial state for n items under st.
func NewStateFor(st Strategy, n int) *State {
	return NewState(n, st.ExpandedByDefault())
}

// ────────────────────────────────────────────────────────────
// Scrolling
// ────────────────────────────────────────────────────────────

// Scrolling keeps scroll <= cursor <= scroll+Window-1 after every move.
type Scrolling struct {
	Window int
}

func (Scrolling) Variant() Variant        { return VariantScroll }
func (Scrolling) ExpandedByDefault() bool { return false }

func (sc Scrolling) Move(s *State, delta int) {
	n := s.Len()
	if n == 0 {
		return
	}
	s.Cursor = wrap(s.Cursor+delta, n)
	sc.reconcile(s)
}

func (sc Scrolling) Page(s *State, delta int) {
	n := s.Len()
	if n == 0 {
		return
	}
	s.Cursor = clamp(s.Cursor+delta, 0, n-1)
	sc.reconcile(s)
}

func (sc Scrolling) Select(s *State, index int) {
	n := s.Len()
	if n == 0 {
		return
	}
	s.Cursor = clamp(index, 0, n-1)
	sc.reconcile(s)
}

func (sc Scrolling) Layout(s *State, minHeights []int, height int) viewport.Allocation {
	return viewport.Layout(minHeights, s.Scroll, s.Cursor, sc.window(), height)
}

func (sc Scrolling) reconcile(s *State) {
	s.Scroll = viewport.Reconcile(s.Scroll, s.Cursor, sc.window())
}

func (sc Scrolling) window() int {
	if sc.Window < 1 {
		return viewport.DefaultVisibleWindow
	}
	return sc.Window
}

// ────────────────────────────────────────────────────────────
// Tab strip
// ────────────────────────────────────────────────────────────

// TabStrip shows only the selected item. There is no scroll offset and
// paging does nothing.
type TabStrip struct{}

func (TabStrip) Variant() Variant        { return VariantTabs }
func (TabStrip) ExpandedByDefault() bool { return true }

func (TabStrip) Move(s *State, delta int) {
	n := s.Len()
	if n == 0 {
		return
	}
	s.Cursor = wrap(s.Cursor+delta, n)
}

func (TabStrip) Page(*State, int) {}

func (TabStrip) Select(s *State, index int) {
	n := s.Len()
	if n == 0 {
		return
	}
	s.Cursor = clamp(index, 0, n-1)
}

func (TabStrip) Layout(s *State, minHeights []int, height int) viewport.Allocation {
	return viewport.Single(len(minHeights), s.Cursor, height)
}

// ── helpers ──

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
