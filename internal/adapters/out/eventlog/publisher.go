// Package eventlog publishes domain events to the application log. It is the
// publisher used when no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"jobboard/internal/core/ports"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "events")}
}

func (p *Publisher) Publish(ctx context.Context, event ports.Event) {
	attrs := []slog.Attr{
		slog.String("type", string(event.Type)),
		slog.String("job_id", event.JobID.String()),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.PosterID != "" {
		attrs = append(attrs, slog.String("poster_id", event.PosterID.String()))
	}
	if event.WorkerID != "" {
		attrs = append(attrs, slog.String("worker_id", event.WorkerID.String()))
	}

	p.logger.LogAttrs(ctx, slog.LevelInfo, "domain event", attrs...)
}
