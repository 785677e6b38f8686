package core

// Color identifies a palette slot for a screen glyph. The platform layer maps
// slots to concrete terminal colors.
type Color uint8

// Palette slots for the neon board.
const (
	ColorDefault Color = iota
	ColorGrid          // faint background grid dots
	ColorBorder        // playfield frame
	ColorHead          // snake head
	ColorBodyNear      // body segments close to the head
	ColorBodyMid
	ColorBodyFar // tail end of the gradient
	ColorFood
	ColorBurst // food-eaten burst marker
	ColorHUD
	ColorOverlay
	ColorDim
)

// BodyColor picks the gradient slot for segment index i of a snake with n
// segments, fading from cyan near the head to blue at the tail.
func BodyColor(i, n int) Color {
	if i == 0 {
		return ColorHead
	}
	if n <= 1 {
		return ColorBodyNear
	}
	pos := float64(i) / float64(n)
	switch {
	case pos < 0.34:
		return ColorBodyNear
	case pos < 0.67:
		return ColorBodyMid
	default:
		return ColorBodyFar
	}
}
