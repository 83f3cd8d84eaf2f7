package suggest

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Styles contains the style definitions for the dropdown
type Styles struct {
	Box      lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the default dropdown styles
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(lipgloss.Color("241")),
		Item: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
	}
}

// View renders the visible list, one row per item, each row padded or
// truncated to the width given to Show. A hidden list renders as "".
func (l *List) View(styles Styles) string {
	if !l.visible {
		return ""
	}

	width := l.width
	if width <= 0 {
		for _, it := range l.items {
			width = max(width, runewidth.StringWidth(it.Value))
		}
	}

	rows := make([]string, len(l.items))
	for i, it := range l.items {
		text := runewidth.FillRight(runewidth.Truncate(it.Value, width, "…"), width)
		if i == l.selected {
			rows[i] = styles.Selected.Render(text)
		} else {
			rows[i] = styles.Item.Render(text)
		}
	}

	return styles.Box.Render(strings.Join(rows, "\n"))
}

// RowAt maps a line offset inside the rendered dropdown to an item index.
// The box has no top border, so line 0 is the first item.
func (l *List) RowAt(line int) (int, bool) {
	if !l.visible || line < 0 || line >= len(l.items) {
		return 0, false
	}
	return line, true
}
