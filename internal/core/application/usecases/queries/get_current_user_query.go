package queries

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrGetCurrentUserQueryIsNotConstructed = errors.New(
	"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
)

// GetCurrentUserQuery resolves a bearer token to its user.
type GetCurrentUserQuery struct {
	token string
	guard guard.ConstructorGuard
}

// NewGetCurrentUserQuery accepts a raw token or an "Authorization: Bearer" value.
func NewGetCurrentUserQuery(token string) (GetCurrentUserQuery, error) {
	token = strings.TrimSpace(token)
	if len(token) > len("bearer ") && strings.EqualFold(token[:len("bearer ")], "bearer ") {
		token = strings.TrimSpace(token[len("bearer "):])
	}
	if token == "" {
		return GetCurrentUserQuery{}, ports.ErrInvalidCredentials
	}
	return GetCurrentUserQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

func (q GetCurrentUserQuery) Token() string { return q.token }

type GetCurrentUserQueryHandler struct {
	users  UserReader
	tokens ports.TokenIssuer
}

func NewGetCurrentUserQueryHandler(users UserReader, tokens ports.TokenIssuer) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{users: users, tokens: tokens}
}

// Handle fails with ports.ErrInvalidCredentials for a bad token or a token
// whose user no longer exists.
func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id, err := h.tokens.Verify(query.Token())
	if err != nil {
		return nil, err
	}

	u, err := h.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, err
	}
	return u, nil
}
