package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDatasetRequested EventType = "DatasetRequested"
	EventDatasetLoaded    EventType = "DatasetLoaded"
	EventDatasetFailed    EventType = "DatasetFailed"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DatasetRequestedEvent is emitted when the fetch of the user batch starts
type DatasetRequestedEvent struct {
	Endpoint string
}

func (e DatasetRequestedEvent) Type() EventType { return EventDatasetRequested }

// DatasetLoadedEvent carries the full, ordered user batch
type DatasetLoadedEvent struct {
	Users []UserRecord
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// DatasetFailedEvent is emitted when the user batch could not be fetched
type DatasetFailedEvent struct {
	Err error
}

func (e DatasetFailedEvent) Type() EventType { return EventDatasetFailed }

// ConfigSavedEvent is emitted when a default config file was written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
