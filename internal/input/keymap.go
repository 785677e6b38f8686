package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// KeyMap holds the movement bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(b config.KeyBindings) KeyMap {
	return KeyMap{
		Up:    binding(b.Up, "move up"),
		Down:  binding(b.Down, "move down"),
		Left:  binding(b.Left, "move left"),
		Right: binding(b.Right, "move right"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders "up/w/k" style labels, using arrows for arrow keys.
func helpKeys(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "up":
			k = "↑"
		case "down":
			k = "↓"
		case "left":
			k = "←"
		case "right":
			k = "→"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Heading returns the heading bound to name.
func (k KeyMap) Heading(name Key) (core.Heading, bool) {
	switch {
	case key.Matches(name, k.Up):
		return core.HeadingUp, true
	case key.Matches(name, k.Down):
		return core.HeadingDown, true
	case key.Matches(name, k.Left):
		return core.HeadingLeft, true
	case key.Matches(name, k.Right):
		return core.HeadingRight, true
	}
	return core.HeadingNone, false
}
