package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSample is the raw input state consumed by one simulation tick.
// Pointer coordinates are in field pixels.
type InputSample struct {
	Up, Down, Left, Right bool

	PointerX, PointerY int
	PointerDown        bool // Primary pointer button held
}

// Press marks the directional key for a as held. Non-directional actions are ignored.
func (s *InputSample) Press(a Action) {
	switch a {
	case ActionUp:
		s.Up = true
	case ActionDown:
		s.Down = true
	case ActionLeft:
		s.Left = true
	case ActionRight:
		s.Right = true
	}
}

// AnyDirection reports whether any directional key is held.
func (s InputSample) AnyDirection() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// ClearKeys releases all directional keys, leaving pointer state intact.
func (s *InputSample) ClearKeys() {
	s.Up, s.Down, s.Left, s.Right = false, false, false, false
}

// InputProvider is the capability a host exposes to sample input once per tick.
type InputProvider interface {
	Sample() InputSample
}

// InputLatch accumulates discrete input events between ticks for hosts that
// receive key presses rather than held-key state (terminals).
type InputLatch struct {
	current InputSample
}

// Press latches a directional action until the next Sample.
func (l *InputLatch) Press(a Action) {
	l.current.Press(a)
}

// MovePointer records the latest pointer position.
func (l *InputLatch) MovePointer(x, y int) {
	l.current.PointerX = x
	l.current.PointerY = y
}

// SetPointerDown records the primary button state.
func (l *InputLatch) SetPointerDown(down bool) {
	l.current.PointerDown = down
}

// Sample returns the accumulated input and releases latched keys.
// Pointer position and button state persist across samples.
func (l *InputLatch) Sample() InputSample {
	s := l.current
	l.current.ClearKeys()
	return s
}
