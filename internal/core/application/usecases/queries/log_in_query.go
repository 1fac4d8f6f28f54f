package queries

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrLogInQueryIsNotConstructed = errors.New(
	"LogInQuery must be created via NewLogInQuery constructor",
)

// LogInQuery exchanges a username and password for a token.
type LogInQuery struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

func NewLogInQuery(username, password string) (LogInQuery, error) {
	var errList []error
	if username == "" {
		errList = append(errList, user.ErrUsernameIsRequired)
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LogInQuery{}, err
	}
	return LogInQuery{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q LogInQuery) Validate() error {
	return q.guard.Validate(ErrLogInQueryIsNotConstructed)
}

func (q LogInQuery) Username() string { return q.username }
func (q LogInQuery) Password() string { return q.password }

// LogInResult is the authenticated user and a fresh token.
type LogInResult struct {
	User  *user.User
	Token string
}

type LogInQueryHandler struct {
	users  UserReader
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
}

func NewLogInQueryHandler(users UserReader, hasher ports.PasswordHasher, tokens ports.TokenIssuer) LogInQueryHandler {
	return LogInQueryHandler{users: users, hasher: hasher, tokens: tokens}
}

// Handle reports an unknown username and a wrong password the same way,
// with ports.ErrInvalidCredentials.
func (h LogInQueryHandler) Handle(ctx context.Context, query LogInQuery) (LogInResult, error) {
	if err := query.Validate(); err != nil {
		return LogInResult{}, err
	}

	u, err := h.users.GetByUsername(ctx, query.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LogInResult{}, ports.ErrInvalidCredentials
	}
	if err != nil {
		return LogInResult{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), query.Password()); err != nil {
		if errors.Is(err, ports.ErrInvalidCredentials) {
			return LogInResult{}, err
		}
		return LogInResult{}, fmt.Errorf("%w: %w", ports.ErrInvalidCredentials, err)
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		return LogInResult{}, err
	}

	return LogInResult{User: u, Token: token}, nil
}
