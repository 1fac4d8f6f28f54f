package ports

import (
	"errors"

	"jobboard/internal/pkg/errs"
)

// Errors shared by use cases and adapters.
var (
	ErrJobNotFound        = errs.NewObjectNotFoundError("job", "job")
	ErrUserNotFound       = errs.NewObjectNotFoundError("user", "user")
	ErrUsernameTaken      = errs.NewConflictError("username", "is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
