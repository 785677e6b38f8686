package core

// Heading is a direction of travel. The zero value HeadingNone means the
// snake is not moving (the idle state before the first input).
type Heading int

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Valid reports whether h is one of the four movement directions.
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

// Delta returns the unit vector for h. Y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. HeadingNone has no opposite and
// returns itself.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return HeadingNone
	}
}

// String returns a human-readable name for the heading.
func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
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

// ParseHeading converts a name or single-letter shorthand (u, d, l, r) to a
// heading. It returns false for anything it does not recognize.
func ParseHeading(s string) (Heading, bool) {
	switch s {
	case "up", "u", "U":
		return HeadingUp, true
	case "down", "d", "D":
		return HeadingDown, true
	case "left", "l", "L":
		return HeadingLeft, true
	case "right", "r", "R":
		return HeadingRight, true
	}
	return HeadingNone, false
}
