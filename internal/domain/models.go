package domain

// SuggestionItem is a single suggestion delivered by a source.
// Key is opaque to the UI; Value is what gets displayed and inserted.
type SuggestionItem struct {
	Key   string
	Value string
}

// Query pairs the text typed by the user with the query whose suggestions
// were last shown for the same input
type Query struct {
	Text     string
	Previous string
}

// Selection records a committed suggestion
type Selection struct {
	Key   string
	Value string
	Query string // input value at the time of commit, before replacement
}
