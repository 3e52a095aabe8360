package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBackendStatus      EventType = "BackendStatus"
	EventStatsUpdated       EventType = "StatsUpdated"
	EventResultsUpdated     EventType = "ResultsUpdated"
	EventWindowCreated      EventType = "WindowCreated"
	EventWindowCreateFailed EventType = "WindowCreateFailed"
	EventWindowShown        EventType = "WindowShown"
	EventWindowHidden       EventType = "WindowHidden"
	EventHotkeyStatus       EventType = "HotkeyStatus"
	EventItemCopied         EventType = "ItemCopied"
	EventItemDeleted        EventType = "ItemDeleted"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BackendStatusEvent is emitted when the health poll observes the backend
// going online or offline
type BackendStatusEvent struct {
	Online bool
}

func (e BackendStatusEvent) Type() EventType { return EventBackendStatus }

// StatsUpdatedEvent carries fresh index counters from the backend
type StatsUpdatedEvent struct {
	Stats Stats
}

func (e StatsUpdatedEvent) Type() EventType { return EventStatsUpdated }

// ResultsUpdatedEvent is emitted when a search or refresh response replaces
// the active result list. Items is nil when the request failed.
type ResultsUpdatedEvent struct {
	Query      QueryState
	Items      []Item
	Generation uint64
}

func (e ResultsUpdatedEvent) Type() EventType { return EventResultsUpdated }

// WindowCreatedEvent acknowledges that the window system finished creating
// the overlay surface
type WindowCreatedEvent struct {
	Label string
}

func (e WindowCreatedEvent) Type() EventType { return EventWindowCreated }

// WindowCreateFailedEvent reports that creation of the overlay surface failed
type WindowCreateFailedEvent struct {
	Label string
	Err   error
}

func (e WindowCreateFailedEvent) Type() EventType { return EventWindowCreateFailed }

// WindowShownEvent is emitted after the overlay becomes visible
type WindowShownEvent struct {
	Label string
}

func (e WindowShownEvent) Type() EventType { return EventWindowShown }

// WindowHiddenEvent is emitted after the overlay is hidden
type WindowHiddenEvent struct {
	Label string
}

func (e WindowHiddenEvent) Type() EventType { return EventWindowHidden }

// HotkeyStatusEvent reports a binding status transition
type HotkeyStatusEvent struct {
	Combo  string
	Status string
}

func (e HotkeyStatusEvent) Type() EventType { return EventHotkeyStatus }

// ItemCopiedEvent is emitted after an item's payload reaches the clipboard
type ItemCopiedEvent struct {
	Item Item
}

func (e ItemCopiedEvent) Type() EventType { return EventItemCopied }

// ItemDeletedEvent is emitted after an item is removed from the backend
type ItemDeletedEvent struct {
	ID int64
}

func (e ItemDeletedEvent) Type() EventType { return EventItemDeleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
