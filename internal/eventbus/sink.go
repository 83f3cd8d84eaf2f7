package eventbus

// Sink publishes committed suggestions on the bus. It satisfies
// autocomplete.SelectionSink without the bus importing the controller.
type Sink struct {
	bus EventBus
}

// NewSink wraps bus as a selection sink
func NewSink(bus EventBus) *Sink {
	return &Sink{bus: bus}
}

// OnSelected is fire-and-forget: Publish never blocks
func (s *Sink) OnSelected(key, value string) {
	s.bus.Publish(SuggestionSelectedEvent{Key: key, Value: value})
}
