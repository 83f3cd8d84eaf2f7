package autocomplete

import "autosuggest/internal/domain"

// ResultMsg carries a finished fetch back into the Update loop
type ResultMsg struct {
	owner uint64
	Query string
	Items []domain.SuggestionItem
	Err   error
}
