package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"autosuggest/internal/config"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(keys KeyMap, cfg config.AutocompleteConfig) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(10)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(b key.Binding) {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
	}

	help.WriteString(titleStyle.Render("autosuggest Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Suggestions"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf(
		"  Suggestions appear %dms after you stop typing, at most %d at a time.",
		cfg.SuggestionDelay, cfg.SuggestionListSize)))
	help.WriteString("\n")
	line(keys.Autocomplete.Next)
	line(keys.Autocomplete.Prev)
	line(keys.Autocomplete.Accept)
	line(keys.Autocomplete.Dismiss)
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("click"), descStyle.Render("accept a suggestion")))

	help.WriteString(sectionStyle.Render("Settings"))
	help.WriteString("\n")
	line(keys.Shrink)
	line(keys.Grow)
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  List size changes are saved to the config file"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line(keys.ToggleFocus)
	line(keys.Help)
	line(keys.Quit)

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the help to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
