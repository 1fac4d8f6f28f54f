package commands

import (
	"context"

	"jobboard/internal/core/domain/model/kernel"
)

// SetAvailabilityCommandHandler overwrites a user's availability. Concurrent
// updates to the same user are serialised; the last commit wins.
type SetAvailabilityCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSetAvailabilityCommandHandler(uowFactory UserUoWFactory) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{uowFactory: uowFactory}
}

// Handle returns the stored blocks. It fails with ports.ErrUserNotFound for
// an unknown user.
func (h SetAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetAvailabilityCommand,
) ([]kernel.TimeWindow, error) {
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

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, userNotFound(err)
	}

	if err = u.ReplaceAvailability(cmd.Blocks()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u.Availability(), nil
}
