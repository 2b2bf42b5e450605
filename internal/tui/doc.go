// Package tui implements the chainview terminal user interface.
//
// It renders one options chain with Charmbracelet's BubbleTea, Lipgloss,
// and Bubbles libraries. Navigation rules live in internal/nav; this
// package only maps keys to actions and draws the result.
//
// Component architecture:
//
//	model.go       root model, key routing, Init/Update/View
//	keys.go        key bindings and help
//	theme.go       centralized color + style definitions
//	header.go      top bar with chain context, footer with hints
//	expirations.go scrolling list of expiration blocks
//	tabs.go        tab strip variant
//	table.go       per-expiration options table
//	search.go      fuzzy jump to an expiration date
//	helpers.go     truncation and clipping
package tui
