package autocomplete

import (
	"context"

	"autosuggest/internal/domain"
)

// SuggestionSource fetches suggestions for a query. previous is the query
// whose results are currently in the list, which lets a source narrow its
// search. Returning no items or an error both mean "no suggestions".
//
// Fetch runs outside the Update loop and may be called concurrently.
type SuggestionSource interface {
	Fetch(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error)
}

// SourceFunc adapts a function to SuggestionSource
type SourceFunc func(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error)

func (f SourceFunc) Fetch(ctx context.Context, query, previous string) ([]domain.SuggestionItem, error) {
	return f(ctx, query, previous)
}

// SelectionSink is told about committed suggestions. It must not block.
type SelectionSink interface {
	OnSelected(key, value string)
}

// SinkFunc adapts a function to SelectionSink
type SinkFunc func(key, value string)

func (f SinkFunc) OnSelected(key, value string) { f(key, value) }
