package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrApplyToJobCommandIsNotConstructed = errors.New(
	"ApplyToJobCommand must be created via NewApplyToJobCommand constructor",
)

// ApplyToJobCommand records a worker's application for a job.
type ApplyToJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UserID

	guard guard.ConstructorGuard
}

func NewApplyToJobCommand(jobID kernel.UUID, workerID string) (ApplyToJobCommand, error) {
	cmd := ApplyToJobCommand{guard: guard.NewConstructorGuard()}

	id, err := kernel.NewUserID(workerID)
	if err != nil {
		err = ErrWorkerIDIsRequired
	}
	if err = errors.Join(jobID.Validate(), err); err != nil {
		return ApplyToJobCommand{}, err
	}

	cmd.jobID = jobID
	cmd.workerID = id
	return cmd, nil
}

func (c ApplyToJobCommand) Validate() error {
	return c.guard.Validate(ErrApplyToJobCommandIsNotConstructed)
}

func (c ApplyToJobCommand) JobID() kernel.UUID      { return c.jobID }
func (c ApplyToJobCommand) WorkerID() kernel.UserID { return c.workerID }
