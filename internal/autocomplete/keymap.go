package autocomplete

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the controller intercepts before they reach the input
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Accept  key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the arrow/enter/escape bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "suggest / next")),
		Prev:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Accept, k.Dismiss}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
