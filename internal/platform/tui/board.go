package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
	"github.com/vovakirdan/neon-snake/internal/events"
)

const (
	cellWidth = 2 // terminal columns per grid cell
	hudRows   = 2 // score line and speed line
	padRows   = 5
	helpRows  = 1
	minWidth  = 48
	padReach  = 4 // columns from the pad center to the left/right arrows
)

// layout positions the board and the on-screen pad on a screen.
type layout struct {
	boardX, boardY int // top-left corner of the frame
	boardW, boardH int // frame size including the border
	padX, padY     int // pad center
}

// requiredSize returns the smallest game screen that fits grid g, not
// counting the help line below it.
func requiredSize(g core.Grid) (w, h int) {
	w = max(g.Width*cellWidth+2, minWidth)
	h = hudRows + g.Height + 2 + 1 + padRows
	return w, h
}

// MinTerminalSize returns the smallest terminal that can show grid g.
func MinTerminalSize(g core.Grid) (w, h int) {
	w, h = requiredSize(g)
	return w, h + helpRows
}

func computeLayout(g core.Grid, screenW int, shake int) layout {
	bw := g.Width*cellWidth + 2
	bh := g.Height + 2
	l := layout{
		boardX: (screenW-bw)/2 + shake,
		boardY: hudRows,
		boardW: bw,
		boardH: bh,
	}
	l.padX = screenW / 2
	l.padY = l.boardY + bh + 1 + padRows/2
	return l
}

// cellOrigin returns the screen position of the left column of cell c.
func (l layout) cellOrigin(c core.Cell) (x, y int) {
	return l.boardX + 1 + c.X*cellWidth, l.boardY + 1 + c.Y
}

// onPad reports whether a screen position falls inside the pad area.
func (l layout) onPad(x, y int) bool {
	return y >= l.padY-padRows/2 && y <= l.padY+padRows/2 &&
		x >= l.padX-padReach-1 && x <= l.padX+padReach+1
}

// view holds what one frame needs.
type view struct {
	snap engine.Snapshot
	fx   *effects
}

// drawGame renders a full frame into dst.
func drawGame(dst *core.Screen, v view) {
	dst.Clear()
	snap := v.snap

	drawHUD(dst, v)

	needW, needH := requiredSize(snap.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorOverlay)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", needW, needH), core.ColorDim)
		return
	}

	l := computeLayout(snap.Grid, dst.Width(), v.fx.shakeOffset())

	border := core.ColorBorder
	if v.fx.shake > 0 {
		border = core.ColorBurst
	}
	dst.DrawBox(l.boardX, l.boardY, l.boardW, l.boardH, border)

	for cy := range snap.Grid.Height {
		for cx := range snap.Grid.Width {
			x, y := l.cellOrigin(core.Cell{X: cx, Y: cy})
			dst.Set(x, y, '·', core.ColorGrid)
		}
	}

	fx, fy := l.cellOrigin(snap.Food)
	dst.Set(fx, fy, '◆', core.ColorFood)

	// Tail first so the head is drawn on top
	n := len(snap.Snake)
	for i := n - 1; i >= 0; i-- {
		seg := snap.Snake[i]
		if !snap.Grid.Contains(seg) {
			continue
		}
		x, y := l.cellOrigin(seg)
		color := core.BodyColor(i, n)
		dst.Set(x, y, '█', color)
		dst.Set(x+1, y, '█', color)
	}

	for _, b := range v.fx.bursts {
		x, y := l.cellOrigin(b.at)
		y -= b.age / 2
		if y > l.boardY {
			dst.DrawText(x, y, b.label, core.ColorBurst)
		}
	}

	switch snap.Phase {
	case core.PhaseIdle:
		drawOverlay(dst, l, "READY", "arrow keys or space to start")
	case core.PhasePaused:
		drawOverlay(dst, l, "PAUSED", "space to resume, r to reset")
	case core.PhaseGameOver:
		title := "GAME OVER"
		if over := v.fx.lastOver; over != nil && over.Score > 0 && over.Score >= v.fx.best {
			title = "GAME OVER - NEW BEST"
		}
		drawOverlay(dst, l,
			title,
			fmt.Sprintf("Score %d  (%s)", snap.Score, reasonText(snap.Reason)),
			"space or r to play again",
		)
	}

	drawPad(dst, l)
}

func drawHUD(dst *core.Screen, v view) {
	snap := v.snap
	left := fmt.Sprintf(" NEON SNAKE  Score %d  Best %d  Length %d", snap.Score, v.fx.best, len(snap.Snake))
	status := fmt.Sprintf(" Speed %.1fx (%d/s)  %s", snap.Multiplier, snap.TickRate, strings.ToUpper(snap.Phase.String()))
	dst.DrawText(0, 0, left, core.ColorHUD)
	dst.DrawText(0, 1, status, core.ColorDim)
}

// drawOverlay draws a framed message box centered on the board.
func drawOverlay(dst *core.Screen, l layout, lines ...string) {
	inner := 0
	for _, line := range lines {
		inner = max(inner, len([]rune(line)))
	}
	w := inner + 4
	h := len(lines) + 2
	x := l.boardX + (l.boardW-w)/2
	y := l.boardY + (l.boardH-h)/2

	dst.FillRect(x, y, w, h, ' ', core.ColorOverlay)
	dst.DrawBox(x, y, w, h, core.ColorOverlay)
	for i, line := range lines {
		lx := x + (w-len([]rune(line)))/2
		color := core.ColorOverlay
		if i > 0 {
			color = core.ColorHUD
		}
		dst.DrawText(lx, y+1+i, line, color)
	}
}

// drawPad draws the clickable direction pad.
func drawPad(dst *core.Screen, l layout) {
	dst.Set(l.padX, l.padY-2, '▲', core.ColorHUD)
	dst.Set(l.padX, l.padY+2, '▼', core.ColorHUD)
	dst.Set(l.padX-padReach, l.padY, '◀', core.ColorHUD)
	dst.Set(l.padX+padReach, l.padY, '▶', core.ColorHUD)
	dst.Set(l.padX, l.padY, '●', core.ColorDim)
}

func reasonText(r events.GameOverReason) string {
	switch r {
	case events.ReasonWall:
		return "hit the wall"
	case events.ReasonSelf:
		return "bit your tail"
	case events.ReasonBoardFull:
		return "board full"
	default:
		return r.String()
	}
}

// Frame renders snap as plain text, without effects or colors.
func Frame(snap engine.Snapshot) string {
	w, h := requiredSize(snap.Grid)
	dst := core.NewScreen(w, h)
	drawGame(dst, view{snap: snap, fx: newEffects(nil, 0)})
	return dst.String()
}
