package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrGetAvailabilityQueryIsNotConstructed = errors.New(
	"GetAvailabilityQuery must be created via NewGetAvailabilityQuery constructor",
)

// GetAvailabilityQuery reads a user's weekly availability.
type GetAvailabilityQuery struct {
	userID kernel.UserID
	guard  guard.ConstructorGuard
}

func NewGetAvailabilityQuery(userID string) (GetAvailabilityQuery, error) {
	id, err := kernel.NewUserID(userID)
	if err != nil {
		return GetAvailabilityQuery{}, errs.NewValueIsRequiredError("userId")
	}
	return GetAvailabilityQuery{userID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailabilityQueryIsNotConstructed)
}

func (q GetAvailabilityQuery) UserID() kernel.UserID { return q.userID }

type GetAvailabilityQueryHandler struct {
	users UserReader
}

func NewGetAvailabilityQueryHandler(users UserReader) GetAvailabilityQueryHandler {
	return GetAvailabilityQueryHandler{users: users}
}

// Handle returns an empty, non-nil slice for a user without availability and
// ports.ErrUserNotFound for an unknown user.
func (h GetAvailabilityQueryHandler) Handle(ctx context.Context, query GetAvailabilityQuery) ([]kernel.TimeWindow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	u, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return nil, userNotFound(err)
	}

	blocks := u.Availability()
	if blocks == nil {
		blocks = []kernel.TimeWindow{}
	}
	return blocks, nil
}
