package kernel

import (
	"strings"

	"jobboard/internal/pkg/errs"
)

// ErrUserIDIsRequired is returned for an empty or blank user identifier.
var ErrUserIDIsRequired = errs.NewValueIsRequiredError("userID")

// UserID is the opaque identity of a poster or worker. The core never
// interprets it beyond equality; it is whatever the caller authenticated as.
type UserID string

// NewUserID trims surrounding whitespace and rejects empty identifiers.
func NewUserID(raw string) (UserID, error) {
	id := UserID(strings.TrimSpace(raw))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate returns ErrUserIDIsRequired for the empty identifier.
func (id UserID) Validate() error {
	if id == "" {
		return ErrUserIDIsRequired
	}
	return nil
}

func (id UserID) String() string {
	return string(id)
}
