package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSuggestionSelected EventType = "SuggestionSelected"
	EventSuggestionsShown   EventType = "SuggestionsShown"
	EventFetchFailed        EventType = "FetchFailed"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventConfigChanged      EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SuggestionSelectedEvent is emitted when the user commits a suggestion
type SuggestionSelectedEvent struct {
	Key   string
	Value string
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// SuggestionsShownEvent is emitted when a fresh result populates the list
type SuggestionsShownEvent struct {
	Query string
	Count int
}

func (e SuggestionsShownEvent) Type() EventType { return EventSuggestionsShown }

// FetchFailedEvent is emitted when a source returns an error.
// The controller treats it as an empty result.
type FetchFailedEvent struct {
	Query string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path               string
	SuggestionListSize int
	SuggestionDelay    int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a runtime setting changed and should be persisted
type ConfigChangedEvent struct {
	SuggestionListSize int
	SuggestionDelay    int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
