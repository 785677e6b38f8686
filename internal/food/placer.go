// Package food chooses where the next food item appears.
package food

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// ErrPlacementExhausted is returned when no free cell could be found, either
// because the snake covers the whole board or because the retry cap ran out.
var ErrPlacementExhausted = errors.New("food: placement exhausted")

// attemptsPerCell scales the default retry cap with the board size. With one
// free cell left, 100*N uniform draws miss it with probability about e^-100.
const attemptsPerCell = 100

// Placer draws food cells uniformly at random over the grid.
type Placer struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewPlacer creates a placer. maxAttempts <= 0 selects a cap of 100 draws
// per grid cell.
func NewPlacer(rng *rand.Rand, maxAttempts int) *Placer {
	return &Placer{
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Place returns a random cell of grid that is not occupied by snake.
// Candidates are redrawn while they coincide with a snake segment.
func (p *Placer) Place(snake []core.Cell, grid core.Grid) (core.Cell, error) {
	total := grid.Cells()
	if total <= 0 {
		return core.Cell{}, fmt.Errorf("%w: empty grid %dx%d", ErrPlacementExhausted, grid.Width, grid.Height)
	}
	if occupied(snake, grid) >= total {
		return core.Cell{}, fmt.Errorf("%w: snake covers all %d cells", ErrPlacementExhausted, total)
	}

	limit := p.maxAttempts
	if limit <= 0 {
		limit = attemptsPerCell * total
	}

	for range limit {
		c := core.Cell{
			X: p.rng.Intn(grid.Width),
			Y: p.rng.Intn(grid.Height),
		}
		if !core.ContainsCell(snake, c) {
			return c, nil
		}
	}

	return core.Cell{}, fmt.Errorf("%w: no free cell after %d attempts", ErrPlacementExhausted, limit)
}

// occupied counts distinct in-grid cells covered by the snake.
func occupied(snake []core.Cell, grid core.Grid) int {
	seen := make(map[core.Cell]struct{}, len(snake))
	for _, c := range snake {
		if grid.Contains(c) {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}
