package commands

import (
	"context"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/ports"
)

// ApproveApplicationCommandHandler approves one application. The job is
// read and written inside a single unit of work, so two approvals racing on
// the same job cannot both see it unfilled.
//
//	cmd, _ := NewApproveApplicationCommand(jobID, "worker-7")
//	_, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, job.ErrAlreadyFilled):
//	    // someone else got it first
//	case errors.Is(err, job.ErrApplicationNotFound):
//	    // worker-7 never applied
//	}
type ApproveApplicationCommandHandler struct {
	uowFactory JobUoWFactory
	publisher  ports.EventPublisher
}

func NewApproveApplicationCommandHandler(
	uowFactory JobUoWFactory,
	publisher ports.EventPublisher,
) ApproveApplicationCommandHandler {
	return ApproveApplicationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the job with the approved application. On failure nothing
// is written.
func (h ApproveApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveApplicationCommand,
) (*job.Job, error) {
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

	if err = aggregate.Approve(cmd.WorkerID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, ports.Event{
		Type:       ports.ApplicationApproved,
		JobID:      aggregate.ID(),
		PosterID:   aggregate.PostedBy(),
		WorkerID:   cmd.WorkerID(),
		OccurredAt: time.Now().UTC(),
	})

	return aggregate, nil
}
