package commands

import (
	"errors"
	"fmt"

	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
)

var (
	ErrWorkerIDIsRequired = errs.NewValueIsRequiredError("workerId")
	ErrPostedByIsRequired = errs.NewValueIsRequiredError("postedBy")
	ErrUserIDIsRequired   = errs.NewValueIsRequiredError("userId")
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// jobNotFound tags a repository miss with ports.ErrJobNotFound.
func jobNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrJobNotFound, err)
	}
	return err
}

func userNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrUserNotFound, err)
	}
	return err
}
