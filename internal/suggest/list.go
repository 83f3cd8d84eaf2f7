// Package suggest holds the suggestion dropdown attached to an input: its
// items, the single selected row and whether it is shown.
package suggest

import (
	"fmt"

	"autosuggest/internal/domain"
)

// NoSelection is the selected index when no row is selected
const NoSelection = -1

// ClickHandler is invoked with the item the user clicked
type ClickHandler func(item domain.SuggestionItem)

// List is the dropdown model. It is not safe for concurrent use; the
// controller only touches it from the event loop.
//
// Invariants: 0 <= ActualSize() <= MaxSize(), the selection is NoSelection or
// a valid index, and the list is only visible when it has items.
type List struct {
	items    []domain.SuggestionItem
	maxSize  int
	selected int
	visible  bool
	width    int
	query    string
	onClick  ClickHandler
}

// NewList creates an empty, hidden list bounded to maxSize items
func NewList(maxSize int) *List {
	l := &List{selected: NoSelection}
	l.SetMaxSize(maxSize)
	return l
}

// Fill replaces the items with the first MaxSize() of items, clears the
// selection and records the query they were fetched for. Staleness is the
// caller's problem.
func (l *List) Fill(items []domain.SuggestionItem, query string) {
	n := min(len(items), l.maxSize)
	l.items = make([]domain.SuggestionItem, n)
	copy(l.items, items[:n])
	l.selected = NoSelection
	l.query = query
	if len(l.items) == 0 {
		l.visible = false
	}
}

// Show makes the list visible at the given width. An empty list stays hidden.
func (l *List) Show(width int) {
	l.width = width
	l.visible = len(l.items) > 0
}

// Hide hides the list and clears the selection. Items are kept until the next Fill.
func (l *List) Hide() {
	l.visible = false
	l.selected = NoSelection
}

// SetMaxSize changes the bound, truncating current items when needed
func (l *List) SetMaxSize(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("suggest: max size must be positive, got %d", n))
	}
	l.maxSize = n
	if len(l.items) > n {
		l.items = l.items[:n]
		if l.selected >= n {
			l.selected = NoSelection
		}
	}
}

func (l *List) MaxSize() int       { return l.maxSize }
func (l *List) ActualSize() int    { return len(l.items) }
func (l *List) SelectedIndex() int { return l.selected }
func (l *List) IsVisible() bool    { return l.visible }
func (l *List) Width() int         { return l.width }

// Query is the query the current items were fetched for
func (l *List) Query() string { return l.query }

// Items returns a copy of the current items
func (l *List) Items() []domain.SuggestionItem {
	out := make([]domain.SuggestionItem, len(l.items))
	copy(out, l.items)
	return out
}

// Item returns a handle on the i-th row. Out of range panics.
func (l *List) Item(i int) Entry {
	l.mustIndex(i)
	return Entry{list: l, index: i}
}

// SelectedItem returns the selected item, or false when nothing is selected
func (l *List) SelectedItem() (domain.SuggestionItem, bool) {
	if l.selected == NoSelection {
		return domain.SuggestionItem{}, false
	}
	return l.items[l.selected], true
}

// SetItemClickHandler registers the commit trigger for mouse clicks
func (l *List) SetItemClickHandler(fn ClickHandler) {
	l.onClick = fn
}

// Click selects row i and hands it to the click handler.
// Clicks on a hidden list are ignored.
func (l *List) Click(i int) {
	if !l.visible {
		return
	}
	l.Item(i).Select()
	if l.onClick != nil {
		l.onClick(l.items[i])
	}
}

func (l *List) mustIndex(i int) {
	if i < 0 || i >= len(l.items) {
		panic(fmt.Sprintf("suggest: index %d out of range [0,%d)", i, len(l.items)))
	}
}

// Entry is a row of the list. Selecting an entry deselects any other.
type Entry struct {
	list  *List
	index int
}

func (e Entry) Index() int { return e.index }

func (e Entry) Value() domain.SuggestionItem {
	return e.list.items[e.index]
}

func (e Entry) IsSelected() bool {
	return e.list.selected == e.index
}

func (e Entry) Select() {
	e.list.mustIndex(e.index)
	e.list.selected = e.index
}

// Deselect clears the selection if this entry holds it
func (e Entry) Deselect() {
	if e.list.selected == e.index {
		e.list.selected = NoSelection
	}
}
