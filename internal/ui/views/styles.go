package views

import (
	"github.com/charmbracelet/lipgloss"

	"autosuggest/internal/suggest"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Dropdown      suggest.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:          lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:          lipgloss.NewStyle().Padding(0, 2),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Dropdown:      suggest.DefaultStyles(),
	}
}
