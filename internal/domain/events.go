package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDisplayItemChanged EventType = "DisplayItemChanged"
	EventCellWillDisplay    EventType = "CellWillDisplay"
	EventItemSelected       EventType = "ItemSelected"
	EventItemDeselected     EventType = "ItemDeselected"
	EventPageCommitted      EventType = "PageCommitted"
	EventDataReloaded       EventType = "DataReloaded"
	EventDeckLoaded         EventType = "DeckLoaded"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventConfigChanged      EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DisplayItemChangedEvent is emitted when the current page changes or is re-announced
type DisplayItemChangedEvent struct {
	Deck   string
	Index  int
	Offset int
	At     time.Time
}

func (e DisplayItemChangedEvent) Type() EventType { return EventDisplayItemChanged }

// CellWillDisplayEvent is emitted before a cell is shown for a page
type CellWillDisplayEvent struct {
	Index  int
	Offset int
}

func (e CellWillDisplayEvent) Type() EventType { return EventCellWillDisplay }

// ItemSelectedEvent is emitted after a page is selected
type ItemSelectedEvent struct {
	Index  int
	Offset int
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// ItemDeselectedEvent is emitted after a page is deselected
type ItemDeselectedEvent struct {
	Index  int
	Offset int
}

func (e ItemDeselectedEvent) Type() EventType { return EventItemDeselected }

// PageCommittedEvent is emitted when a gesture commits a page move
type PageCommittedEvent struct {
	Move   string // "forward" or "backward"
	Index  int
	Offset int
}

func (e PageCommittedEvent) Type() EventType { return EventPageCommitted }

// DataReloadedEvent is emitted when the list is reloaded
type DataReloadedEvent struct {
	Items int
}

func (e DataReloadedEvent) Type() EventType { return EventDataReloaded }

// DeckLoadedEvent is emitted when a deck has been read
type DeckLoadedEvent struct {
	Deck Deck
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when list settings change at runtime and should be saved
type ConfigChangedEvent struct {
	ScrollDirection string
	ScrollEnabled   bool
	Margin          int // left and right page margin
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
