package nav

// DefaultPageStep is how far page up/down moves the cursor.
const DefaultPageStep = 5

// Action is an input event after key mapping.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleExpand
	ActionToggleGreeks
	ActionNext
	ActionPrev
	ActionPageDown
	ActionPageUp
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionToggleExpand:
		return "toggle-expand"
	case ActionToggleGreeks:
		return "toggle-greeks"
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionPageDown:
		return "page-down"
	case ActionPageUp:
		return "page-up"
	default:
		return "none"
	}
}

// Dispatcher applies actions to a State through a Strategy.
type Dispatcher struct {
	Strategy Strategy
	PageStep int
}

// NewDispatcher pairs a strategy with a page step; a step below 1 uses
// DefaultPageStep.
func NewDispatcher(st Strategy, pageStep int) Dispatcher {
	if pageStep < 1 {
		pageStep = DefaultPageStep
	}
	return Dispatcher{Strategy: st, PageStep: pageStep}
}

// Apply performs a and reports whether the application should exit.
// Unknown actions are ignored.
func (d Dispatcher) Apply(s *State, a Action) (quit bool) {
	switch a {
	case ActionQuit:
		return true
	case ActionToggleExpand:
		s.ToggleExpand()
	case ActionToggleGreeks:
		s.ToggleGreeks()
	case ActionNext:
		d.Strategy.Move(s, 1)
	case ActionPrev:
		d.Strategy.Move(s, -1)
	case ActionPageDown:
		d.Strategy.Page(s, d.PageStep)
	case ActionPageUp:
		d.Strategy.Page(s, -d.PageStep)
	}
	return false
}
