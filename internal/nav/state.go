// Package nav holds the mutable view state of the chain viewer and the
// two navigation strategies that drive it.
//
// There is exactly one State per run. It is owned by the UI model and
// passed explicitly into every transition; nothing here is global.
// All transitions are no-ops on an empty chain.
package nav

// State is the selection, expand flags, scroll offset and greeks flag.
type State struct {
	Expanded   []bool
	Cursor     int
	Scroll     int
	ShowGreeks bool
}

// NewState creates state for n expirations with every item expanded or
// collapsed according to expanded. Greeks start visible.
func NewState(n int, expanded bool) *State {
	flags := make([]bool, n)
	if expanded {
		for i := range flags {
			flags[i] = true
		}
	}
	return &State{
		Expanded:   flags,
		ShowGreeks: true,
	}
}

// Len is the number of items the state tracks.
func (s *State) Len() int {
	return len(s.Expanded)
}

// IsExpanded reports the flag for item i; out-of-range items are
// collapsed.
func (s *State) IsExpanded(i int) bool {
	if i < 0 || i >= len(s.Expanded) {
		return false
	}
	return s.Expanded[i]
}

// ToggleExpand flips the expand flag of the selected item.
func (s *State) ToggleExpand() {
	if s.Cursor < 0 || s.Cursor >= len(s.Expanded) {
		return
	}
	s.Expanded[s.Cursor] = !s.Expanded[s.Cursor]
}

// ToggleGreeks flips greeks visibility. It does not depend on the
// selection.
func (s *State) ToggleGreeks() {
	s.ShowGreeks = !s.ShowGreeks
}
