package input

import "fmt"

// Intent is a raw input event from some device.
type Intent interface {
	intent()
}

// Key is a key name as the terminal reports it ("up", "w", "ctrl+c").
type Key string

// String returns the key name.
func (k Key) String() string { return string(k) }

// Touch is a press on the on-screen pad, as an offset from its center in cells.
type Touch struct {
	DX, DY float64
}

// Swipe is a drag gesture vector.
type Swipe struct {
	DX, DY float64
}

func (Key) intent()   {}
func (Touch) intent() {}
func (Swipe) intent() {}

func (t Touch) String() string { return fmt.Sprintf("touch(%.1f,%.1f)", t.DX, t.DY) }
func (s Swipe) String() string { return fmt.Sprintf("swipe(%.1f,%.1f)", s.DX, s.DY) }
