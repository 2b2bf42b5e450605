// Package viewport windows a variable-height list into a fixed-height
// screen area.
//
// Items are measured in terminal lines. A collapsed item is a bordered
// header; an expanded one also carries a table whose height follows its
// row count. Scroll reconciliation works in item counts against a fixed
// window, while allocation works in lines against the physical height.
// The two are independent and can disagree when many tall items are
// expanded; callers clip whatever does not fit.
package viewport

// DefaultVisibleWindow is the number of items scroll reconciliation
// assumes are on screen at once.
const DefaultVisibleWindow = 10

const (
	// CollapsedHeight is a border plus the header line.
	CollapsedHeight = 3
	// tableChrome covers the inner table header and its separator.
	tableChrome = 2
)

// ItemHeight is the minimum number of lines an item needs.
func ItemHeight(expanded bool, rows int) int {
	if !expanded {
		return CollapsedHeight
	}
	if rows < 0 {
		rows = 0
	}
	return CollapsedHeight + rows + tableChrome
}

// Reconcile moves scroll the least amount needed so that cursor lies in
// [scroll, scroll+window).
func Reconcile(scroll, cursor, window int) int {
	if window < 1 {
		window = 1
	}
	if cursor < scroll {
		return cursor
	}
	if cursor >= scroll+window {
		return cursor - window + 1
	}
	return scroll
}

// Allocation is the visible window and the line height given to each
// visible item.
type Allocation struct {
	Scroll  int
	Start   int
	End     int // exclusive
	Heights []int
}

// Len is the number of visible items.
func (a Allocation) Len() int {
	return a.End - a.Start
}

// Contains reports whether item i is in the visible window.
func (a Allocation) Contains(i int) bool {
	return i >= a.Start && i < a.End
}

// HeightOf returns the lines assigned to item i, or 0 when i is not
// visible.
func (a Allocation) HeightOf(i int) int {
	if !a.Contains(i) {
		return 0
	}
	return a.Heights[i-a.Start]
}

// Total is the sum of assigned heights.
func (a Allocation) Total() int {
	total := 0
	for _, h := range a.Heights {
		total += h
	}
	return total
}

// Layout reconciles scroll against cursor and then allocates the
// visible items. It does not touch its inputs.
func Layout(minHeights []int, scroll, cursor, window, height int) Allocation {
	if len(minHeights) > 0 {
		scroll = Reconcile(scroll, cursor, window)
	}
	return Allocate(minHeights, scroll, height)
}

// Allocate picks the items in [scroll, min(n, scroll+height)) and gives
// each its minimum height. Any surplus lines go to the last visible
// item. When the minimums already meet or exceed height nothing is
// adjusted and the caller clips.
func Allocate(minHeights []int, scroll, height int) Allocation {
	n := len(minHeights)
	if scroll < 0 {
		scroll = 0
	}
	a := Allocation{Scroll: scroll, Start: scroll, End: scroll}
	if n == 0 || height <= 0 || scroll >= n {
		if a.Start > n {
			a.Start, a.End = n, n
		}
		return a
	}

	a.End = minInt(n, scroll+height)
	a.Heights = make([]int, 0, a.End-a.Start)

	total := 0
	for i := a.Start; i < a.End; i++ {
		h := minHeights[i]
		if h < 1 {
			h = 1
		}
		a.Heights = append(a.Heights, h)
		total += h
	}

	if total < height {
		a.Heights[len(a.Heights)-1] += height - total
	}
	return a
}

// Single is the degenerate allocation used when exactly one item is
// shown: the selected item gets the full height.
func Single(n, cursor, height int) Allocation {
	if n == 0 || cursor < 0 || cursor >= n {
		return Allocation{}
	}
	if height < 1 {
		height = 1
	}
	return Allocation{
		Start:   cursor,
		End:     cursor + 1,
		Heights: []int{height},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
