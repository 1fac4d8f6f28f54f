package commands

import (
	"context"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/ports"
)

// ApplyToJobCommandHandler adds a pending application. Applying twice
// returns the unchanged job; the event is only published for a new application.
type ApplyToJobCommandHandler struct {
	uowFactory JobUoWFactory
	publisher  ports.EventPublisher
}

func NewApplyToJobCommandHandler(uowFactory JobUoWFactory, publisher ports.EventPublisher) ApplyToJobCommandHandler {
	return ApplyToJobCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the job as it stands after the application.
func (h ApplyToJobCommandHandler) Handle(ctx context.Context, cmd ApplyToJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JobRepository()

	aggregate, err := repo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, jobNotFound(err)
	}

	added, err := aggregate.Apply(cmd.WorkerID())
	if err != nil {
		return nil, err
	}
	if !added {
		return aggregate, nil
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.Event{
		Type:       ports.ApplicationSubmitted,
		JobID:      aggregate.ID(),
		PosterID:   aggregate.PostedBy(),
		WorkerID:   cmd.WorkerID(),
		OccurredAt: time.Now().UTC(),
	})

	return aggregate, nil
}
