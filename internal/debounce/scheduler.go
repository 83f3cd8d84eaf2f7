// Package debounce coalesces rapid input into a single delayed request.
//
// Bubble Tea timers cannot be stopped once started, so cancellation works by
// sequence number: every Schedule or Cancel bumps the sequence, and a fire
// whose sequence is no longer current is ignored by Accept. At any moment at
// most one request is live.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Request is what a fire delivers: the query typed and the query whose
// results were last shown
type Request struct {
	owner    uint64
	ID       uint64
	Query    string
	Previous string
	Delay    time.Duration
}

// FireMsg is sent to the program when a scheduled delay elapses
type FireMsg struct {
	Request Request
}

var schedulerIDs atomic.Uint64

// Scheduler holds at most one pending request. It is driven from the
// Update loop and is not safe for concurrent use.
type Scheduler struct {
	id      uint64 // fires from other schedulers in the same program are ignored
	seq     uint64
	pending *Request
}

// New creates an idle scheduler
func New() *Scheduler {
	return &Scheduler{id: schedulerIDs.Add(1)}
}

// Schedule supersedes any pending request and returns the command that
// delivers the new one after delay. A zero delay fires on the next loop turn.
func (s *Scheduler) Schedule(query, previous string, delay time.Duration) tea.Cmd {
	if delay < 0 {
		delay = 0
	}

	s.seq++
	req := Request{
		owner:    s.id,
		ID:       s.seq,
		Query:    query,
		Previous: previous,
		Delay:    delay,
	}
	s.pending = &req

	if delay == 0 {
		return func() tea.Msg {
			return FireMsg{Request: req}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return FireMsg{Request: req}
	})
}

// Cancel discards the pending request, if any. Its timer still runs but
// its fire will be rejected.
func (s *Scheduler) Cancel() {
	s.seq++
	s.pending = nil
}

// Accept reports whether msg is the live request and, if so, clears it.
// Superseded or cancelled fires return false.
func (s *Scheduler) Accept(msg FireMsg) (Request, bool) {
	if s.pending == nil || msg.Request.owner != s.id || msg.Request.ID != s.pending.ID {
		return Request{}, false
	}
	req := *s.pending
	s.pending = nil
	return req, true
}

// Pending returns the live request, if any
func (s *Scheduler) Pending() (Request, bool) {
	if s.pending == nil {
		return Request{}, false
	}
	return *s.pending, true
}

// IsPending returns true if a request is armed
func (s *Scheduler) IsPending() bool {
	return s.pending != nil
}
