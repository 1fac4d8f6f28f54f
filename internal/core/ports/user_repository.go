package ports

import (
	"context"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
)

// UserRepository persists accounts and their availability.
type UserRepository interface {
	// Add stores a new user. A taken username is reported with an error
	// matching errs.ErrConflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Update replaces the stored user, availability included.
	Update(ctx context.Context, aggregate *user.User) error

	// Get returns the user with id or an error matching errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UserID) (*user.User, error)

	// GetByUsername looks a user up by exact username.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
