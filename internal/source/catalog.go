// Package source provides suggestion sources: an in-memory catalog plus
// decorators that cache results or simulate a slow backend.
package source

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"autosuggest/internal/domain"
)

// Source is the fetch contract the controller expects
type Source interface {
	Fetch(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error)
}

// Mode selects how a catalog matches queries
type Mode string

const (
	ModePrefix Mode = "prefix"
	ModeFuzzy  Mode = "fuzzy"
)

// Entry is a catalog suggestion. Higher scores sort first in prefix mode.
type Entry struct {
	Key   string
	Value string
	Score float64
}

// Catalog answers queries from a fixed set of entries. When a query
// extends the previous one, only the previous matches are searched.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry
	values  []string
	mode    Mode

	// matches of the most recent query, for narrowing
	lastQuery   string
	lastMatches []int
}

// NewCatalog creates a catalog. Entries are ordered by descending score,
// ties keeping their given order.
func NewCatalog(entries []Entry, mode Mode) *Catalog {
	c := &Catalog{mode: mode}
	c.set(entries)
	return c
}

// Add inserts or replaces the entry with the same key
func (c *Catalog) Add(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.Key == "" {
		e.Key = e.Value
	}
	entries := make([]Entry, 0, len(c.entries)+1)
	for _, existing := range c.entries {
		if existing.Key != e.Key {
			entries = append(entries, existing)
		}
	}
	c.set(append(entries, e))
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Catalog) set(entries []Entry) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	for i := range sorted {
		if sorted[i].Key == "" {
			sorted[i].Key = sorted[i].Value
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	c.entries = sorted
	c.values = make([]string, len(sorted))
	for i, e := range sorted {
		c.values[i] = e.Value
	}
	c.lastQuery = ""
	c.lastMatches = nil
}

// Fetch returns the entries matching query, best first
func (c *Catalog) Fetch(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == "" {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	candidates := c.candidates(query, previous)
	var matches []int
	switch c.mode {
	case ModeFuzzy:
		matches = c.fuzzyMatch(query, candidates)
	default:
		matches = c.prefixMatch(query, candidates)
	}

	c.lastQuery = query
	c.lastMatches = matches

	items := make([]domain.SuggestionItem, len(matches))
	for i, idx := range matches {
		items[i] = domain.SuggestionItem{Key: c.entries[idx].Key, Value: c.entries[idx].Value}
	}
	return items, nil
}

// candidates narrows the search to the last matches when query extends
// the previous query and those matches are still cached
func (c *Catalog) candidates(query, previous string) []int {
	if previous != "" && previous == c.lastQuery &&
		strings.HasPrefix(strings.ToLower(query), strings.ToLower(previous)) {
		return c.lastMatches
	}
	all := make([]int, len(c.entries))
	for i := range all {
		all[i] = i
	}
	return all
}

func (c *Catalog) prefixMatch(query string, candidates []int) []int {
	lower := strings.ToLower(query)
	var out []int
	for _, idx := range candidates {
		if strings.HasPrefix(strings.ToLower(c.values[idx]), lower) {
			out = append(out, idx)
		}
	}
	return out
}

func (c *Catalog) fuzzyMatch(query string, candidates []int) []int {
	// Ties are broken by position, so search in catalog order
	candidates = append([]int(nil), candidates...)
	sort.Ints(candidates)

	data := make([]string, len(candidates))
	for i, idx := range candidates {
		data[i] = c.values[idx]
	}
	found := fuzzy.Find(query, data)
	out := make([]int, len(found))
	for i, m := range found {
		out[i] = candidates[m.Index]
	}
	return out
}
