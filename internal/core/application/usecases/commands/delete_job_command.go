package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand removes a job together with its applications.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteJobCommand(jobID kernel.UUID) (DeleteJobCommand, error) {
	if err := jobID.Validate(); err != nil {
		return DeleteJobCommand{}, err
	}
	return DeleteJobCommand{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

func (c DeleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}
