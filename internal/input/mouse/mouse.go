package mouse

import "time"

// Buttons is the set of buttons held in a raw report.
type Buttons uint8

const (
	// ButtonPrimary is the primary (left) mouse button.
	ButtonPrimary Buttons = 1 << iota
	// ButtonWheelUp indicates scroll wheel up.
	ButtonWheelUp
	// ButtonWheelDown indicates scroll wheel down.
	ButtonWheelDown
	// ButtonWheelLeft indicates horizontal scroll left.
	ButtonWheelLeft
	// ButtonWheelRight indicates horizontal scroll right.
	ButtonWheelRight

	// ButtonNone indicates no button.
	ButtonNone Buttons = 0
)

// Has returns true if b contains other.
func (b Buttons) Has(other Buttons) bool {
	return b&other != 0
}

// Action represents the type of mouse gesture.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates the primary button went down.
	ActionPress
	// ActionDrag indicates movement with the primary button held.
	ActionDrag
	// ActionRelease indicates the primary button went up.
	ActionRelease
	// ActionClick follows a release that stayed close to its press.
	ActionClick
	// ActionWheel indicates a wheel tick.
	ActionWheel
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionDrag:
		return "drag"
	case ActionRelease:
		return "release"
	case ActionClick:
		return "click"
	case ActionWheel:
		return "wheel"
	default:
		return "none"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two positions.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Event is a derived mouse gesture.
type Event struct {
	// Position is the screen coordinates.
	Position Position

	// Action is the type of gesture.
	Action Action

	// Direction is set for ActionWheel.
	Direction ScrollDirection

	// Start is where the press happened, for drag, release and click.
	Start Position

	// Delta is the horizontal travel since the previous drag report.
	Delta int

	// Timestamp is when the report arrived.
	Timestamp time.Time
}

// Config configures gesture detection.
type Config struct {
	// ClickDistance is the maximum travel between press and release for
	// the release to count as a click.
	ClickDistance int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{ClickDistance: 1}
}

// Handler derives gestures from successive raw reports.
type Handler struct {
	config Config
	prev   Buttons
	drag   gesture
	click  *clickTracker
}

// NewHandler creates a new mouse handler with the given configuration.
func NewHandler(config Config) *Handler {
	return &Handler{
		config: config,
		click:  newClickTracker(config.ClickDistance),
	}
}

// Feed consumes one raw report and returns the gestures it implies.
// A zero timestamp is replaced with time.Now().
func (h *Handler) Feed(x, y int, buttons Buttons, when time.Time) []Event {
	if when.IsZero() {
		when = time.Now()
	}
	pos := Position{X: x, Y: y}
	var out []Event

	wasDown := h.prev.Has(ButtonPrimary)
	isDown := buttons.Has(ButtonPrimary)

	switch {
	case isDown && !wasDown:
		h.drag.begin(pos)
		h.click.press(pos)
		out = append(out, Event{Position: pos, Start: pos, Action: ActionPress, Timestamp: when})
	case isDown && wasDown:
		if dx, ok := h.drag.move(pos); ok {
			h.click.moved(pos)
			out = append(out, Event{Position: pos, Start: h.drag.start, Delta: dx, Action: ActionDrag, Timestamp: when})
		}
	case !isDown && wasDown:
		start := h.drag.finish()
		out = append(out, Event{Position: pos, Start: start, Action: ActionRelease, Timestamp: when})
		if h.click.release(pos) {
			out = append(out, Event{Position: pos, Start: start, Action: ActionClick, Timestamp: when})
		}
	}

	if dir := wheelDirection(buttons); dir != ScrollNone {
		out = append(out, Event{Position: pos, Action: ActionWheel, Direction: dir, Timestamp: when})
	}

	h.prev = buttons
	return out
}

// Reset clears all handler state.
func (h *Handler) Reset() {
	h.prev = ButtonNone
	h.drag.finish()
	h.click.reset()
}

// IsDragging returns true if the primary button is held.
func (h *Handler) IsDragging() bool {
	return h.drag.held
}

// DragStart returns the starting position of the current drag (if any).
func (h *Handler) DragStart() (Position, bool) {
	if !h.drag.held {
		return Position{}, false
	}
	return h.drag.start, true
}
