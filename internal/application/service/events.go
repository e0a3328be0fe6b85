package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ProfileEvent struct {
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	Collection string    `json:"collection,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher emits profile change events after a write has committed.
// Publishing is best-effort; failures are logged, never surfaced to the
// caller.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, evt ProfileEvent) error
}
