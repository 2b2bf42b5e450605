package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mr-Dark-debug/chainview/internal/nav"
)

// keyMap is every binding the viewer reacts to outside search mode.
// Bindings that do not apply to the active variant are disabled, which
// also hides them from the help line.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Expand   key.Binding
	Greeks   key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap(v nav.Variant) keyMap {
	k := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next tab"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "expand"),
		),
		Greeks: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "greeks"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	tabs := v == nav.VariantTabs
	k.Prev.SetEnabled(tabs)
	k.Next.SetEnabled(tabs)
	k.PageUp.SetEnabled(!tabs)
	k.PageDown.SetEnabled(!tabs)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Expand, k.Greeks, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.PageUp, k.PageDown},
		{k.Expand, k.Greeks, k.Search},
		{k.Help, k.Quit},
	}
}

// actionFor maps a key press to a navigation action. Keys without a
// binding map to ActionNone.
func (k keyMap) actionFor(msg tea.KeyMsg) nav.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return nav.ActionQuit
	case key.Matches(msg, k.Expand):
		return nav.ActionToggleExpand
	case key.Matches(msg, k.Greeks):
		return nav.ActionToggleGreeks
	case key.Matches(msg, k.Down), key.Matches(msg, k.Next):
		return nav.ActionNext
	case key.Matches(msg, k.Up), key.Matches(msg, k.Prev):
		return nav.ActionPrev
	case key.Matches(msg, k.PageDown):
		return nav.ActionPageDown
	case key.Matches(msg, k.PageUp):
		return nav.ActionPageUp
	default:
		return nav.ActionNone
	}
}
