package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects how the status line is colored
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Indicator     string // shown right-aligned on the title line
	Input         string // the autocomplete view, input plus dropdown
	StatusMessage string
	StatusKind    StatusKind
	Help          string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var content strings.Builder

	content.WriteString(r.titleLine(state))
	content.WriteString("\n")
	content.WriteString(state.Input)

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(r.status(state)))
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}

// InputOrigin returns the cell where the first line of state.Input is drawn
func (r *Renderer) InputOrigin(state ViewState) (x, y int) {
	return r.styles.Main.GetPaddingLeft(), r.styles.Main.GetPaddingTop() + lipgloss.Height(r.titleLine(state))
}

func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	if state.Indicator == "" {
		return logo
	}

	right := r.styles.Dim.Render(state.Indicator)
	// MarginBottom adds a blank line; pad only the first one
	lines := strings.Split(logo, "\n")
	padding := state.Width - r.styles.Main.GetHorizontalPadding() - lipgloss.Width(lines[0]) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	lines[0] += strings.Repeat(" ", padding) + right
	return strings.Join(lines, "\n")
}

func (r *Renderer) status(state ViewState) string {
	switch state.StatusKind {
	case StatusError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	default:
		return state.StatusMessage
	}
}
