package dto

import (
	"time"

	"pathfinder-be/pkg/datastore"
)

type StatusResponse struct {
	Ready    bool                    `json:"ready"`
	Degraded []datastore.DatasetName `json:"degraded"`
	Warnings []string                `json:"warnings"`
	LoadedAt *time.Time              `json:"loaded_at,omitempty"`
}

// CatalogLoadedMessage travels on the in-process event bus.
type CatalogLoadedMessage struct {
	EventId  string                  `json:"event_id"`
	Degraded []datastore.DatasetName `json:"degraded"`
	Warnings int                     `json:"warnings"`
	Stats    datastore.QuickStats    `json:"stats"`
	LoadedAt time.Time               `json:"loaded_at"`
}

// ReadyFrame is pushed to websocket clients once data is available.
type ReadyFrame struct {
	Type     string                  `json:"type"`
	Degraded []datastore.DatasetName `json:"degraded"`
	Stats    datastore.QuickStats    `json:"stats"`
}
