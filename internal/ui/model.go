package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"autosuggest/internal/autocomplete"
	"autosuggest/internal/config"
	"autosuggest/internal/eventbus"
	"autosuggest/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model is the demo screen: one autocompleting input, a status line and help
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	ac     *autocomplete.Controller

	width  int
	height int
	keys   KeyMap
	help   help.Model

	status     string
	statusKind views.StatusKind
	statusSeq  int

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	inPagerMode  bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around an autocomplete controller
func NewModel(bus eventbus.EventBus, cfg *config.Config, ac *autocomplete.Controller) *Model {
	styles := views.NewStyles()
	return &Model{
		bus:          bus,
		config:       cfg,
		ac:           ac,
		keys:         DefaultKeyMap(ac.KeyMap()),
		help:         help.New(),
		renderer:     views.NewRenderer(styles),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init focuses the input
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.ac.Init(), m.ac.Focus())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			_, top := m.renderer.InputOrigin(m.viewState())
			m.ac.ClickAt(msg.Y - top)
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline help
			log.Printf("Help pager failed: %v", msg.err)
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, m.ac.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.keys, m.ac.Config()))

	case key.Matches(msg, m.keys.Shrink):
		return m, m.resizeList(-1)

	case key.Matches(msg, m.keys.Grow):
		return m, m.resizeList(1)

	case key.Matches(msg, m.keys.ToggleFocus):
		if m.ac.Focused() {
			m.ac.Blur()
			return m, nil
		}
		return m, m.ac.Focus()
	}

	cmd, consumed := m.ac.HandleKey(msg)
	if consumed {
		return m, cmd
	}

	// Keys the autocomplete left alone keep their usual meaning
	switch msg.Type {
	case tea.KeyEnter:
		if value := m.ac.Value(); value != "" {
			return m, m.setStatus(fmt.Sprintf("Submitted %q", value), views.StatusInfo)
		}
	case tea.KeyEsc:
		if !m.ac.Focused() {
			return m, tea.Quit
		}
	}
	return m, cmd
}

// resizeList changes the dropdown size by delta and announces the new config
func (m *Model) resizeList(delta int) tea.Cmd {
	size := m.ac.Config().SuggestionListSize + delta
	if size < 1 {
		return m.setStatus("List size is already 1", views.StatusError)
	}
	if err := m.ac.SetSuggestionListSize(size); err != nil {
		return m.setStatus(err.Error(), views.StatusError)
	}

	// The config is saved by whoever listens; it is not ours to write
	if m.bus != nil {
		cfg := m.ac.Config()
		m.bus.Publish(eventbus.ConfigChangedEvent{
			SuggestionListSize: cfg.SuggestionListSize,
			SuggestionDelay:    cfg.SuggestionDelay,
		})
	}
	return m.setStatus(fmt.Sprintf("Showing up to %d suggestions", size), views.StatusInfo)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SuggestionSelectedEvent:
		if e.Key != e.Value {
			return m.setStatus(fmt.Sprintf("Selected %s (%s)", e.Value, e.Key), views.StatusSuccess)
		}
		return m.setStatus("Selected "+e.Value, views.StatusSuccess)
	case eventbus.FetchFailedEvent:
		return m.setStatus(fmt.Sprintf("No suggestions for %q: %v", e.Query, e.Err), views.StatusError)
	case eventbus.ConfigSavedEvent:
		return m.setStatus("Saved "+e.Path, views.StatusInfo)
	case eventbus.ConfigLoadedEvent:
		log.Printf("Config loaded from %s", e.Path)
	}
	return nil
}

// setStatus shows msg until a newer status replaces it or the timeout passes
func (m *Model) setStatus(msg string, kind views.StatusKind) tea.Cmd {
	m.statusSeq++
	m.status = msg
	m.statusKind = kind
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// Status returns the current status line text
func (m *Model) Status() string { return m.status }

func (m *Model) viewState() views.ViewState {
	indicator := m.ac.State().String()
	if !m.ac.Focused() {
		indicator = "unfocused"
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         "autosuggest",
		Indicator:     indicator,
		Input:         m.ac.View(),
		StatusMessage: m.status,
		StatusKind:    m.statusKind,
	}
	if m.config.UISettings.ShowHelp {
		state.Help = m.help.View(m.keys)
	}
	return state
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}
