// Package autocomplete binds a suggestion dropdown to a text input.
//
// The Controller owns a bubbles textinput, a suggest.List and a
// debounce.Scheduler, and is driven entirely from a Bubble Tea Update loop:
// keystrokes re-arm the debounce, a fire starts an asynchronous fetch, and the
// fetch result is applied only if its query still equals the live input value.
package autocomplete

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"autosuggest/internal/config"
	"autosuggest/internal/debounce"
	"autosuggest/internal/domain"
	"autosuggest/internal/eventbus"
	"autosuggest/internal/suggest"
)

var controllerIDs atomic.Uint64

// Controller is the autocomplete state machine for one input
type Controller struct {
	id     uint64
	input  textinput.Model
	list   *suggest.List
	sched  *debounce.Scheduler
	source SuggestionSource
	sink   SelectionSink
	bus    eventbus.EventBus
	keys   KeyMap
	styles suggest.Styles
	cfg    config.AutocompleteConfig

	ctx      context.Context
	cancel   context.CancelFunc
	detached bool
}

// Option configures a Controller
type Option func(*Controller)

// WithBus publishes SuggestionsShown and FetchFailed events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithKeyMap replaces the default arrow/enter/escape bindings
func WithKeyMap(km KeyMap) Option {
	return func(c *Controller) { c.keys = km }
}

// WithStyles replaces the dropdown styles
func WithStyles(s suggest.Styles) Option {
	return func(c *Controller) { c.styles = s }
}

// WithPlaceholder sets the input placeholder
func WithPlaceholder(p string) Option {
	return func(c *Controller) { c.input.Placeholder = p }
}

// WithWidth sets the input width in cells
func WithWidth(w int) Option {
	return func(c *Controller) { c.input.Width = w }
}

// WithPrompt sets the input prompt
func WithPrompt(p string) Option {
	return func(c *Controller) { c.input.Prompt = p }
}

// New creates a controller. source is required; sink may be nil.
func New(source SuggestionSource, sink SelectionSink, cfg config.AutocompleteConfig, opts ...Option) (*Controller, error) {
	if source == nil {
		return nil, fmt.Errorf("autocomplete: nil suggestion source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		id:     controllerIDs.Add(1),
		input:  textinput.New(),
		list:   suggest.NewList(cfg.SuggestionListSize),
		sched:  debounce.New(),
		source: source,
		sink:   sink,
		keys:   DefaultKeyMap(),
		styles: suggest.DefaultStyles(),
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.list.SetItemClickHandler(c.commit)

	return c, nil
}

// Init returns the initial command
func (c *Controller) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages addressed to the controller and its input
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := c.HandleKey(msg)
		return cmd
	case debounce.FireMsg:
		return c.handleFire(msg)
	case ResultMsg:
		c.handleResult(msg)
		return nil
	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return cmd
	}
}

// HandleKey processes a key and reports whether the controller consumed it.
// An unconsumed key keeps its default meaning for the host (Enter with no
// selection, Escape with a hidden list).
func (c *Controller) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if c.detached || !c.input.Focused() {
		return nil, false
	}

	switch {
	case key.Matches(msg, c.keys.Next):
		if !c.list.IsVisible() {
			return c.showSuggestionsFor(c.input.Value(), 0), true
		}
		c.selectNext()
		return nil, true

	case key.Matches(msg, c.keys.Prev):
		// Always consumed so the input cursor does not jump
		if c.list.IsVisible() {
			c.selectPrevious()
		}
		return nil, true

	case key.Matches(msg, c.keys.Dismiss):
		wasVisible := c.list.IsVisible()
		c.sched.Cancel()
		c.list.Hide()
		return nil, wasVisible

	case key.Matches(msg, c.keys.Accept):
		item, ok := c.list.SelectedItem()
		if !ok || !c.list.IsVisible() {
			return nil, false
		}
		c.commit(item)
		return nil, true
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() != before {
		return tea.Batch(cmd, c.onInput()), true
	}
	return cmd, true
}

// ClickAt handles a click on line n of the controller's View, where line 0
// is the input itself. Clicking a row commits it.
func (c *Controller) ClickAt(line int) {
	if c.detached {
		return
	}
	if row, ok := c.list.RowAt(line - 1); ok {
		c.list.Click(row)
	}
}

func (c *Controller) onInput() tea.Cmd {
	if value := c.input.Value(); value != "" {
		return c.showSuggestionsFor(value, c.cfg.Delay())
	}
	c.sched.Cancel()
	c.list.Hide()
	return nil
}

func (c *Controller) showSuggestionsFor(text string, delay time.Duration) tea.Cmd {
	if text == "" {
		c.sched.Cancel()
		return nil
	}
	return c.sched.Schedule(text, c.list.Query(), delay)
}

func (c *Controller) handleFire(msg debounce.FireMsg) tea.Cmd {
	req, ok := c.sched.Accept(msg)
	if !ok || c.detached {
		return nil
	}

	source, ctx, owner := c.source, c.ctx, c.id
	return func() tea.Msg {
		items, err := source.Fetch(ctx, req.Query, req.Previous)
		return ResultMsg{owner: owner, Query: req.Query, Items: items, Err: err}
	}
}

func (c *Controller) handleResult(msg ResultMsg) {
	if msg.owner != c.id || c.detached {
		return
	}
	if msg.Err != nil {
		log.Printf("autocomplete: fetch for %q failed: %v", msg.Query, msg.Err)
		c.publish(eventbus.FetchFailedEvent{Query: msg.Query, Err: msg.Err})
		return
	}
	// Replies can arrive out of order; only the one matching the live text counts
	if msg.Query != c.input.Value() {
		log.Printf("autocomplete: dropping stale result for %q (input is %q)", msg.Query, c.input.Value())
		return
	}
	if len(msg.Items) == 0 {
		return
	}

	c.list.Fill(msg.Items, msg.Query)
	c.list.Show(c.Width())
	c.publish(eventbus.SuggestionsShownEvent{Query: msg.Query, Count: c.list.ActualSize()})
}

// selectNext moves forward; past the last row the selection goes to none
func (c *Controller) selectNext() {
	size := c.list.ActualSize()
	if size == 0 {
		return
	}
	index := c.list.SelectedIndex()
	if index < size-1 {
		c.list.Item(index + 1).Select()
	} else {
		c.list.Item(index).Deselect()
	}
}

// selectPrevious moves back; above the first row the selection goes to
// none, and from none it wraps to the last row
func (c *Controller) selectPrevious() {
	size := c.list.ActualSize()
	if size == 0 {
		return
	}
	switch index := c.list.SelectedIndex(); {
	case index > 0:
		c.list.Item(index - 1).Select()
	case index == 0:
		c.list.Item(index).Deselect()
	default:
		c.list.Item(size - 1).Select()
	}
}

func (c *Controller) commit(item domain.SuggestionItem) {
	c.input.SetValue(item.Value)
	c.input.CursorEnd()
	c.sched.Cancel()
	c.list.Hide()

	log.Printf("autocomplete: committed %q (key %q)", item.Value, item.Key)
	if c.sink != nil {
		c.sink.OnSelected(item.Key, item.Value)
	}
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

// Focus focuses the input
func (c *Controller) Focus() tea.Cmd {
	if c.detached {
		return nil
	}
	return c.input.Focus()
}

// Blur removes focus, hiding the list and dropping any armed fetch
func (c *Controller) Blur() {
	c.input.Blur()
	c.sched.Cancel()
	c.list.Hide()
}

// Focused reports whether the input has focus
func (c *Controller) Focused() bool {
	return c.input.Focused()
}

// Detach ends the controller's life: the armed fetch is dropped, the list is
// hidden, in-flight fetches see a cancelled context and their results are
// ignored. A detached controller ignores all input.
func (c *Controller) Detach() {
	if c.detached {
		return
	}
	c.detached = true
	c.Blur()
	c.cancel()
}

// SetConfig applies a configuration change at any time
func (c *Controller) SetConfig(cfg config.AutocompleteConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg
	c.list.SetMaxSize(cfg.SuggestionListSize)
	return nil
}

// SetSuggestionListSize changes the maximum number of rows
func (c *Controller) SetSuggestionListSize(n int) error {
	cfg := c.cfg
	cfg.SuggestionListSize = n
	return c.SetConfig(cfg)
}

// SetSuggestionDelay changes the debounce delay in milliseconds
func (c *Controller) SetSuggestionDelay(ms int) error {
	cfg := c.cfg
	cfg.SuggestionDelay = ms
	return c.SetConfig(cfg)
}

func (c *Controller) Config() config.AutocompleteConfig { return c.cfg }

// Value returns the live input text
func (c *Controller) Value() string { return c.input.Value() }

// SetValue replaces the input text without triggering a fetch
func (c *Controller) SetValue(v string) {
	c.input.SetValue(v)
	c.input.CursorEnd()
}

// SetWidth sets the input width in cells
func (c *Controller) SetWidth(w int) {
	c.input.Width = w
}

// Width is the rendered width of the input, prompt included. The list is shown at this width.
func (c *Controller) Width() int {
	w := c.input.Width
	if w <= 0 {
		w = max(runewidth.StringWidth(c.input.Value()), runewidth.StringWidth(c.input.Placeholder)) + 1
	}
	return w + runewidth.StringWidth(c.input.Prompt)
}

// State reports the current interaction state. An armed fetch wins over
// whatever the list shows.
func (c *Controller) State() State {
	switch {
	case c.sched.IsPending():
		return StatePending
	case c.list.IsVisible() && c.list.SelectedIndex() != suggest.NoSelection:
		return StateNavigating
	case c.list.IsVisible():
		return StateShowing
	default:
		return StateIdle
	}
}

// List exposes the dropdown for inspection
func (c *Controller) List() *suggest.List { return c.list }

// PendingRequest returns the armed debounce request, if any
func (c *Controller) PendingRequest() (debounce.Request, bool) {
	return c.sched.Pending()
}

// KeyMap returns the active bindings
func (c *Controller) KeyMap() KeyMap { return c.keys }

// View renders the input and, below it, the list when visible
func (c *Controller) View() string {
	view := c.input.View()
	if c.list.IsVisible() {
		view += "\n" + c.list.View(c.styles)
	}
	return view
}
