package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// colorStyles maps palette slots to the neon theme.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorGrid:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2a44")),
	core.ColorBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7b2ff7")),
	core.ColorHead:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true),
	core.ColorBodyNear: lipgloss.NewStyle().Foreground(lipgloss.Color("#00d4ff")),
	core.ColorBodyMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0099ff")),
	core.ColorBodyFar:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0055ff")),
	core.ColorFood:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")).Bold(true),
	core.ColorBurst:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff66ff")).Bold(true),
	core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")),
	core.ColorOverlay:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.Get(x, y)
				if g.Color != color {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
