package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if g := s.Get(x, y); g.Rune != ' ' || g.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", g, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, '@', ColorHead)
	if g := s.Get(5, 5); g.Rune != '@' || g.Color != ColorHead {
		t.Errorf("Get(5, 5) = %+v, expected '@' in head color", g)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorFood)
	s.Set(100, 0, 'A', ColorFood)
	s.Set(0, -1, 'A', ColorFood)
	s.Set(0, 100, 'A', ColorFood)

	if s.Get(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score", ColorHUD)

	for i, ch := range "Score" {
		if g := s.Get(2+i, 1); g.Rune != ch || g.Color != ColorHUD {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, g)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorHUD)
	if s.Get(18, 0).Rune != 'H' || s.Get(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "─x─", ColorOverlay)

	if got := s.Row(0); got != "    ─x─    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorBorder)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if g := s.Get(c.x, c.y); g.Rune != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, g.Rune, c.r)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1).Rune != '─' || s.Get(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y).Rune != '│' || s.Get(5, y).Rune != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenFillRectAndClear(t *testing.T) {
	s := NewScreen(6, 6)
	s.FillRect(1, 1, 3, 2, '#', ColorOverlay)

	if s.Get(1, 1).Rune != '#' || s.Get(3, 2).Rune != '#' {
		t.Error("FillRect should cover the requested area")
	}
	if s.Get(4, 1).Rune != ' ' || s.Get(1, 3).Rune != ' ' {
		t.Error("FillRect should not spill outside the area")
	}

	s.Clear()
	if s.Get(1, 1).Rune != ' ' {
		t.Error("Clear should blank the screen")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if got := s.Row(-1); got != strings.Repeat(" ", 5) {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != strings.Repeat(" ", 8) {
		t.Errorf("Resize should discard content, row 0 = %q", s.Row(0))
	}
}
