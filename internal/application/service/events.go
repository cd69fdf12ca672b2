package service

import (
	"context"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated       EventType = "created"
	EventUpdated       EventType = "updated"
	EventStatusChanged EventType = "status_changed"
	EventDeleted       EventType = "deleted"
	EventUpserted      EventType = "upserted"
)

type ChangeEvent struct {
	EventType  EventType `json:"event_type"`
	Resource   string    `json:"resource"`
	ResourceID uuid.UUID `json:"resource_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Pages      []string  `json:"pages"` // page paths whose cached payloads are stale
}

//go:generate mockgen -source=events.go -destination=../../mocks/mock_events.go -package=mocks
type EventPublisher interface {
	PublishInterviewEvent(ctx context.Context, evt ChangeEvent) error
	PublishStandupEvent(ctx context.Context, evt ChangeEvent) error
}
