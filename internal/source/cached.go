package source

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"autosuggest/internal/domain"
)

// Cached remembers the results of the most recently used queries.
// Errors are not cached.
type Cached struct {
	next  Source
	cache *lru.Cache[string, []domain.SuggestionItem]
}

// NewCached wraps next with an LRU cache of size queries
func NewCached(next Source, size int) (*Cached, error) {
	cache, err := lru.New[string, []domain.SuggestionItem](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion cache: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

func (c *Cached) Fetch(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error) {
	if items, ok := c.cache.Get(query); ok {
		return clone(items), nil
	}

	items, err := c.next.Fetch(ctx, query, previous)
	if err != nil {
		return nil, err
	}
	c.cache.Add(query, clone(items))
	return items, nil
}

// Purge drops every cached result
func (c *Cached) Purge() {
	c.cache.Purge()
}

// Len returns the number of cached queries
func (c *Cached) Len() int {
	return c.cache.Len()
}

func clone(items []domain.SuggestionItem) []domain.SuggestionItem {
	if items == nil {
		return nil
	}
	out := make([]domain.SuggestionItem, len(items))
	copy(out, items)
	return out
}
