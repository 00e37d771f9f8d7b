package input

// Event is a routed gesture. Handlers that fully own a gesture call Consume
// so it cannot also reach a lower-priority handler — tapping the favorite
// control must never fall through to the flip gesture.
type Event struct {
	Intent   Intent
	X, Y     int // Cell coordinates for mouse gestures, -1 for keys
	consumed bool
}

// NewEvent creates a key-originated event
func NewEvent(intent Intent) *Event {
	return &Event{Intent: intent, X: -1, Y: -1}
}

// NewMouseEvent creates a mouse-originated event at cell coordinates
func NewMouseEvent(intent Intent, x, y int) *Event {
	return &Event{Intent: intent, X: x, Y: y}
}

// Consume marks the gesture as handled, stopping propagation
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether a handler already owns this gesture
func (e *Event) Consumed() bool {
	return e.consumed
}
