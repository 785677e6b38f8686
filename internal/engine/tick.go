package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/events"
	"github.com/vovakirdan/neon-snake/internal/food"
)

// Tick advances a Running game by one cell.
//
// Order: resolve the pending heading, prepend the new head, eat or drop the
// tail, then check collisions. Events are published before Tick returns.
func (e *Engine) Tick() error {
	if e.phase != core.PhaseRunning {
		return fmt.Errorf("%w: tick while %s", ErrInvalidTransition, e.phase)
	}
	e.ticks++

	e.resolveHeading()

	head := e.snake[0].Add(e.delta)
	e.snake = append(e.snake, core.Cell{})
	copy(e.snake[1:], e.snake[:len(e.snake)-1])
	e.snake[0] = head

	if head == e.food {
		if over := e.eat(); over {
			return nil
		}
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	if reason, hit := e.collision(); hit {
		e.gameOver(reason)
		return nil
	}

	e.bus.Publish(events.Tick{
		Round: e.round,
		Tick:  e.ticks,
		Snake: e.copySnake(),
		Food:  e.food,
		Score: e.score,
	})
	return nil
}

// resolveHeading applies the pending heading unless it would reverse the
// snake onto itself. The pending slot is consumed either way.
func (e *Engine) resolveHeading() {
	next := e.pending
	e.pending = core.HeadingNone

	if next == core.HeadingNone {
		return
	}
	if e.delta != core.HeadingNone && next == e.delta.Opposite() {
		e.logger.Debug("reversal rejected", "round", e.round, "heading", next, "delta", e.delta)
		return
	}
	e.delta = next
}

// eat scores the food under the head, places the next one and applies the
// speed step. It reports whether the game ended because no food fits.
func (e *Engine) eat() bool {
	eaten := e.food
	e.score += e.cfg.Scoring.FoodPoints

	e.logger.Debug("food eaten", "round", e.round, "at", eaten, "score", e.score, "length", len(e.snake))
	e.bus.Publish(events.FoodEaten{
		Round: e.round,
		Tick:  e.ticks,
		At:    eaten,
		Score: e.score,
	})

	next, err := e.placer.Place(e.snake, e.grid)
	if err != nil {
		if !errors.Is(err, food.ErrPlacementExhausted) {
			e.logger.Error("food placement", "round", e.round, "err", err)
		}
		e.gameOver(events.ReasonBoardFull)
		return true
	}
	e.food = next

	if e.score%e.cfg.Speed.EveryPoints == 0 && e.cfg.Speed.Step > 0 {
		e.baseRate += e.cfg.Speed.Step
		e.logger.Debug("speed up", "round", e.round, "base_rate", e.baseRate, "rate", e.TickRate())
	}
	return false
}

// collision checks the head against the walls, then against every segment
// from index SelfExemption on. The leading segments are exempt so tight
// turns right after a direction change never count as a bite.
func (e *Engine) collision() (events.GameOverReason, bool) {
	head := e.snake[0]
	if !e.grid.Contains(head) {
		return events.ReasonWall, true
	}
	for i := e.cfg.Collision.SelfExemption; i < len(e.snake); i++ {
		if e.snake[i] == head {
			return events.ReasonSelf, true
		}
	}
	return 0, false
}

func (e *Engine) gameOver(reason events.GameOverReason) {
	e.phase = core.PhaseGameOver
	e.reason = reason

	e.logger.Info("game over", "round", e.round, "score", e.score, "reason", reason, "ticks", e.ticks, "length", len(e.snake))
	e.bus.Publish(events.GameOver{
		Round:  e.round,
		Tick:   e.ticks,
		Score:  e.score,
		Reason: reason,
	})
}
