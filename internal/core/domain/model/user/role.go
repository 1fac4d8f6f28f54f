package user

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// Role decides which side of the board a user is on.
type Role int

const (
	UnknownRole Role = iota
	Worker
	Poster
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Worker:      "worker",
		Poster:      "poster",
	}
}

// ParseRole accepts "worker" or "poster", case-insensitively.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownRole, errs.NewValueIsRequiredError("role")
	}
	for role, str := range getRoleStrings() {
		if role != UnknownRole && strings.EqualFold(str, s) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not one of worker, poster", s))
}

func (r Role) Validate() error {
	if r != Worker && r != Poster {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
