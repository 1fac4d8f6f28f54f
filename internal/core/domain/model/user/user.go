package user

import (
	"errors"
	"slices"
	"strings"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed   = errors.New("User must be created via NewUser or RestoreUser")
	ErrUsernameIsRequired     = errs.NewValueIsRequiredError("username")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// User is a registered account. The password hash is opaque to the domain.
type User struct {
	id           kernel.UserID
	username     string
	passwordHash string
	role         Role
	availability []kernel.TimeWindow
	guard        guard.ConstructorGuard
}

// NewUser creates an account with no availability.
func NewUser(id kernel.UserID, username, passwordHash string, role Role) (*User, error) {
	return RestoreUser(id, username, passwordHash, role, nil)
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(
	id kernel.UserID,
	username, passwordHash string,
	role Role,
	availability []kernel.TimeWindow,
) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		role.Validate(),
		u.ReplaceAvailability(availability),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UserID    { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }

// Availability returns a copy of the user's weekly blocks in stored order.
func (u *User) Availability() []kernel.TimeWindow {
	return slices.Clone(u.availability)
}

// ReplaceAvailability overwrites all blocks. A nil or empty slice clears them.
func (u *User) ReplaceAvailability(blocks []kernel.TimeWindow) error {
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	if len(blocks) == 0 {
		u.availability = nil
		return nil
	}
	u.availability = slices.Clone(blocks)
	return nil
}

// Clone returns a copy sharing no mutable state with u.
func (u *User) Clone() *User {
	c := *u
	c.availability = slices.Clone(u.availability)
	return &c
}

func (u *User) setID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}
