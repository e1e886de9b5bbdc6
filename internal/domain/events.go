package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventConfigChanged    EventType = "ConfigChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after the host applies a selection update
type SelectionChangedEvent struct {
	WidgetID string
	Added    []string // option ids
	Removed  []string // option ids
	Selected []Option // full selection after the change
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// Total returns the number of selected options after the change
func (e SelectionChangedEvent) Total() int { return len(e.Selected) }

// ConfigChangedEvent is emitted when persisted settings should be written
type ConfigChangedEvent struct {
	SelectedIDs []string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
