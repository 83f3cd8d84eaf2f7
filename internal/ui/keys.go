package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"autosuggest/internal/autocomplete"
)

// KeyMap holds the application keys. They are checked before the
// autocomplete sees a key, so none of them may be printable.
type KeyMap struct {
	Help        key.Binding
	Shrink      key.Binding
	Grow        key.Binding
	ToggleFocus key.Binding
	Quit        key.Binding

	Autocomplete autocomplete.KeyMap
}

// DefaultKeyMap returns the default application keys
func DefaultKeyMap(ac autocomplete.KeyMap) KeyMap {
	return KeyMap{
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		Shrink:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "fewer rows")),
		Grow:        key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "more rows")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Autocomplete: ac,
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Autocomplete.Next, k.Autocomplete.Accept, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Autocomplete.ShortHelp(),
		{k.Shrink, k.Grow, k.ToggleFocus},
		{k.Help, k.Quit},
	}
}
