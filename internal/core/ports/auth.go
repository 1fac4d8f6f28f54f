package ports

import (
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
)

// PasswordHasher turns passwords into opaque hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrInvalidCredentials when password does not match hash.
	Compare(hash, password string) error
}

// TokenIssuer issues and verifies bearer tokens identifying a user.
type TokenIssuer interface {
	Issue(u *user.User) (string, error)
	// Verify returns the user id the token was issued for, or
	// ErrInvalidCredentials for a malformed, forged or expired token.
	Verify(token string) (kernel.UserID, error)
}
