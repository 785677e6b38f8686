// Package core provides the grid model shared by the simulation, the loop and
// the presentation layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Cell is a position on the board, measured in grid cells.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns the cell reached by moving one step in heading h.
// HeadingNone returns c unchanged.
func (c Cell) Add(h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as (x,y).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the discrete playfield, Width x Height cells with the origin at the
// top-left corner.
type Grid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Contains reports whether c lies in [0, Width) x [0, Height).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// ContainsCell reports whether cells holds c.
func ContainsCell(cells []Cell, c Cell) bool {
	for _, seg := range cells {
		if seg == c {
			return true
		}
	}
	return false
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
