package commands

import (
	"context"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/ports"
)

// CreateJobCommandHandler stores a new job with no applications and
// announces it with a job.created event.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	publisher  ports.EventPublisher
}

func NewCreateJobCommandHandler(uowFactory JobUoWFactory, publisher ports.EventPublisher) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the stored job.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := job.NewJob(cmd.JobID(), cmd.Posting(), cmd.PostedBy(), cmd.Occurrence())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.Event{
		Type:       ports.JobCreated,
		JobID:      aggregate.ID(),
		PosterID:   aggregate.PostedBy(),
		OccurredAt: time.Now().UTC(),
	})

	return aggregate, nil
}
