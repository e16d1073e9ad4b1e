package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDeckLoaded      EventType = "DeckLoaded"
	EventSlideChanged    EventType = "SlideChanged"
	EventLoopCorrected   EventType = "LoopCorrected"
	EventMoveRejected    EventType = "MoveRejected"
	EventAutoplayStarted EventType = "AutoplayStarted"
	EventAutoplayStopped EventType = "AutoplayStopped"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DeckLoadedEvent is emitted when a container has been resolved into slides
type DeckLoadedEvent struct {
	Source string
	Count  int
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// SlideChangedEvent is emitted when an animated move starts
type SlideChangedEvent struct {
	From       int
	To         int
	ActivePage int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// LoopCorrectedEvent is emitted when the track silently jumps out of a clone region
type LoopCorrectedEvent struct {
	From int
	To   int
}

func (e LoopCorrectedEvent) Type() EventType { return EventLoopCorrected }

// MoveRejectedEvent is emitted when a move arrives while a transition is in flight
type MoveRejectedEvent struct {
	Step int
}

func (e MoveRejectedEvent) Type() EventType { return EventMoveRejected }

// AutoplayStartedEvent is emitted when the autoplay timer is armed
type AutoplayStartedEvent struct {
	Timer int
}

func (e AutoplayStartedEvent) Type() EventType { return EventAutoplayStarted }

// AutoplayStoppedEvent is emitted when the autoplay timer is cancelled
type AutoplayStoppedEvent struct {
	Reason string
}

func (e AutoplayStoppedEvent) Type() EventType { return EventAutoplayStopped }

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
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
