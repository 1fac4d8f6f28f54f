package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrApproveApplicationCommandIsNotConstructed = errors.New(
	"ApproveApplicationCommand must be created via NewApproveApplicationCommand constructor",
)

// ApproveApplicationCommand gives a job to one of its applicants.
type ApproveApplicationCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	workerID kernel.UserID

	guard guard.ConstructorGuard
}

func NewApproveApplicationCommand(jobID kernel.UUID, workerID string) (ApproveApplicationCommand, error) {
	cmd := ApproveApplicationCommand{guard: guard.NewConstructorGuard()}

	id, err := kernel.NewUserID(workerID)
	if err != nil {
		err = ErrWorkerIDIsRequired
	}
	if err = errors.Join(jobID.Validate(), err); err != nil {
		return ApproveApplicationCommand{}, err
	}

	cmd.jobID = jobID
	cmd.workerID = id
	return cmd, nil
}

func (c ApproveApplicationCommand) Validate() error {
	return c.guard.Validate(ErrApproveApplicationCommandIsNotConstructed)
}

func (c ApproveApplicationCommand) JobID() kernel.UUID      { return c.jobID }
func (c ApproveApplicationCommand) WorkerID() kernel.UserID { return c.workerID }
