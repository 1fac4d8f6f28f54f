package commands

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
)

// SignUpResult is the new account and a token the client can use right away.
type SignUpResult struct {
	User  *user.User
	Token string
}

// SignUpCommandHandler creates an account with a hashed password.
type SignUpCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewSignUpCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle fails with ports.ErrUsernameTaken when the username is in use.
func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (SignUpResult, error) {
	if err := cmd.Validate(); err != nil {
		return SignUpResult{}, err
	}

	// Hashing is slow; keep it outside the transaction.
	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return SignUpResult{}, err
	}

	u, err := user.NewUser(kernel.UserID(kernel.NewUUID().String()), cmd.Username(), hash, cmd.Role())
	if err != nil {
		return SignUpResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SignUpResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	_, err = repo.GetByUsername(ctx, u.Username())
	switch {
	case err == nil:
		return SignUpResult{}, ports.ErrUsernameTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return SignUpResult{}, err
	}

	if err = repo.Add(ctx, u); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return SignUpResult{}, fmt.Errorf("%w: %w", ports.ErrUsernameTaken, err)
		}
		return SignUpResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SignUpResult{}, err
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		return SignUpResult{}, err
	}

	return SignUpResult{User: u, Token: token}, nil
}
