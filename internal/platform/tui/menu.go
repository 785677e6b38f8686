package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/config"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff00ff")).Bold(true)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// DifficultyModel lets the player pick a difficulty preset before playing.
type DifficultyModel struct {
	presets  []config.DifficultyPreset
	cursor   int
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	selected config.DifficultyPreset
	quitting bool
}

// NewDifficultyModel creates the menu with the cursor on "normal".
func NewDifficultyModel(width, height int) DifficultyModel {
	m := DifficultyModel{
		presets: config.Presets,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("N E O N   S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-7s %s", p, p.Description())
		style := menuItemStyle
		if i == m.cursor {
			line = fmt.Sprintf("> %-7s %s", p, p.Description())
			style = menuSelectedStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	return m.selected
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultyMenu shows the menu and returns the chosen preset.
// ok is false when the player quit instead of choosing.
func RunDifficultyMenu(width, height int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: menu: %w", err)
	}
	m, isMenu := final.(DifficultyModel)
	if !isMenu || m.Selected() == "" {
		return "", false, nil
	}
	return m.Selected(), true, nil
}
