package commands

import (
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// MinPasswordLength is the shortest password SignUp accepts.
const MinPasswordLength = 8

var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor",
)

// SignUpCommand registers a worker or poster account.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

func NewSignUpCommand(username, password, role string) (SignUpCommand, error) {
	cmd := SignUpCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) Username() string { return c.username }
func (c SignUpCommand) Password() string { return c.password }
func (c SignUpCommand) Role() user.Role  { return c.role }

func (c *SignUpCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password", fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}
	c.password = password
	return nil
}

func (c *SignUpCommand) setRole(role string) error {
	r, err := user.ParseRole(role)
	if err != nil {
		return err
	}
	c.role = r
	return nil
}
