package commands

import (
	"errors"
	"slices"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand replaces a user's weekly availability. An empty
// block list clears it.
type SetAvailabilityCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UserID
	blocks []kernel.TimeWindow

	guard guard.ConstructorGuard
}

func NewSetAvailabilityCommand(userID string, blocks []kernel.TimeWindow) (SetAvailabilityCommand, error) {
	id, err := kernel.NewUserID(userID)
	if err != nil {
		err = ErrUserIDIsRequired
	}

	errList := []error{err}
	for _, b := range blocks {
		errList = append(errList, b.Validate())
	}
	if err = errors.Join(errList...); err != nil {
		return SetAvailabilityCommand{}, err
	}

	return SetAvailabilityCommand{
		userID: id,
		blocks: slices.Clone(blocks),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

func (c SetAvailabilityCommand) UserID() kernel.UserID { return c.userID }

func (c SetAvailabilityCommand) Blocks() []kernel.TimeWindow {
	return slices.Clone(c.blocks)
}
