package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/input"
)

// KeyMap holds the game command bindings. Movement keys come from the
// configured input bindings.
type KeyMap struct {
	Move   input.KeyMap
	Toggle key.Binding
	Reset  key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Move.ShortHelp(),
		{k.Toggle, k.Reset},
		{k.Faster, k.Slower},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the command bindings around the given movement keys.
func DefaultKeyMap(move input.KeyMap) KeyMap {
	return KeyMap{
		Move: move,
		Toggle: key.NewBinding(
			key.WithKeys(config.CommandKeys.Toggle...),
			key.WithHelp("space/p", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys(config.CommandKeys.Reset...),
			key.WithHelp("r", "reset"),
		),
		Faster: key.NewBinding(
			key.WithKeys(config.CommandKeys.Faster...),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys(config.CommandKeys.Slower...),
			key.WithHelp("-", "slower"),
		),
		Help: key.NewBinding(
			key.WithKeys(config.CommandKeys.Help...),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys(config.CommandKeys.Quit...),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuKeyMap holds the bindings of the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
