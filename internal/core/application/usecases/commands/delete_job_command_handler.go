package commands

import (
	"context"
)

// DeleteJobCommandHandler deletes a job. Applicants are not notified; they
// find the job gone the next time they list jobs.
type DeleteJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewDeleteJobCommandHandler(uowFactory JobUoWFactory) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{uowFactory: uowFactory}
}

// Handle fails with ports.ErrJobNotFound when there is no such job.
func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JobRepository().Delete(ctx, cmd.JobID()); err != nil {
		return jobNotFound(err)
	}

	return uow.Commit(ctx)
}
