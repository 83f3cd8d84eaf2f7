package autocomplete

// State is the interaction state of a controller
type State int

const (
	// StateIdle: list hidden, nothing scheduled
	StateIdle State = iota
	// StatePending: a debounced fetch is armed; the list is left as it was
	StatePending
	// StateShowing: list visible, nothing selected
	StateShowing
	// StateNavigating: list visible with a row selected but not committed
	StateNavigating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateShowing:
		return "showing"
	case StateNavigating:
		return "navigating"
	default:
		return "unknown"
	}
}
