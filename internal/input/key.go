// Package input turns raw terminal keys into the four logical actions the
// screens understand and suppresses repeats arriving faster than a fixed
// interval.
package input

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyEvent is a logical key action for one loop iteration.
type KeyEvent uint8

const (
	KeyNone KeyEvent = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEsc
)

func (k KeyEvent) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	default:
		return "none"
	}
}

// KeyMap binds raw key names to logical actions. Key names follow the
// bubbletea vocabulary ("up", "enter", "esc", single runes).
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Esc   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
	}
}

// Lookup maps a raw key name to its action. Unknown and disabled keys map
// to KeyNone.
func (m KeyMap) Lookup(name string) KeyEvent {
	if name == "" {
		return KeyNone
	}
	for _, entry := range []struct {
		binding key.Binding
		event   KeyEvent
	}{
		{m.Up, KeyUp},
		{m.Down, KeyDown},
		{m.Enter, KeyEnter},
		{m.Esc, KeyEsc},
	} {
		if !entry.binding.Enabled() {
			continue
		}
		for _, k := range entry.binding.Keys() {
			if k == name {
				return entry.event
			}
		}
	}
	return KeyNone
}

// ShortHelp implements help.KeyMap.
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Enter, m.Esc}
}

// FullHelp implements help.KeyMap.
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// HelpLine renders the bindings as a single plain-text line.
func (m KeyMap) HelpLine() string {
	h := help.New()
	h.Styles = help.Styles{}
	return h.ShortHelpView(m.ShortHelp())
}
