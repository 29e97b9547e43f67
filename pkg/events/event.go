package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	// CatalogLoaded is emitted once, when the data store becomes ready.
	CatalogLoaded = "CATALOG_LOADED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventId uniquely identifies one occurrence.
	EventId() string

	// EventType returns the unique code for this event (e.g., "CATALOG_LOADED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Id         string
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Id:         uuid.NewString(),
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventId() string {
	return e.Id
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
