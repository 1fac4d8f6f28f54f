package ports

import (
	"context"
	"time"

	"jobboard/internal/core/domain/model/kernel"
)

// EventType names a domain event on the wire.
type EventType string

const (
	JobCreated           EventType = "job.created"
	ApplicationSubmitted EventType = "job.application_submitted"
	ApplicationApproved  EventType = "job.application_approved"
)

// Event is a fact published after a command commits.
type Event struct {
	Type       EventType
	JobID      kernel.UUID
	PosterID   kernel.UserID
	WorkerID   kernel.UserID
	OccurredAt time.Time
}

// EventPublisher delivers events to interested parties on a best-effort
// basis. Delivery failures are the publisher's to report; they never undo or
// fail the command that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
