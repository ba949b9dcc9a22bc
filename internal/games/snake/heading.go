package snake

import "github.com/vovakirdan/wrapsnake/internal/core"

// Heading is the snake's direction of travel.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Vector returns the heading as a unit vector in screen coordinates (y grows downward).
func (h Heading) Vector() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// ResolveHeading picks the heading for the next move from the held keys.
// Rules are checked in the order Up, Down, Left, Right and the first one that
// applies wins. A key is ignored when it would reverse the current heading.
// Down is also ignored while Left or Right is held.
func ResolveHeading(in core.InputSample, current Heading) Heading {
	switch {
	case in.Up && current != HeadingDown:
		return HeadingUp
	case in.Down && current != HeadingUp && !in.Left && !in.Right:
		return HeadingDown
	case in.Left && current != HeadingRight:
		return HeadingLeft
	case in.Right && current != HeadingLeft:
		return HeadingRight
	}
	return current
}
