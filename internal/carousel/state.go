package carousel

// State is the interaction state of a carousel.
type State uint8

const (
	// StateIdle means nothing owns the scroll position.
	StateIdle State = iota
	// StateDragging means a pointer is down on the strip.
	StateDragging
	// StateMomentum means the strip is coasting after a fast release.
	StateMomentum
	// StateGliding means a page scroll animation is running.
	StateGliding
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateMomentum:
		return "momentum"
	case StateGliding:
		return "gliding"
	default:
		return "unknown"
	}
}

// transitions lists the legal moves of the state machine. A new pointer
// down is legal from every state; momentum is only reachable from a drag.
var transitions = map[State][]State{
	StateIdle:     {StateDragging, StateGliding},
	StateDragging: {StateIdle, StateDragging, StateMomentum, StateGliding},
	StateMomentum: {StateIdle, StateDragging, StateGliding},
	StateGliding:  {StateIdle, StateDragging, StateGliding},
}

// canTransition reports whether from -> to is a legal move.
func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
