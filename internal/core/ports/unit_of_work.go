package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Reads and writes made
// through its repositories between Begin and Commit are atomic with respect
// to other units of work touching the same jobs or users.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit makes the changes visible. It fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the changes. It is safe to call after Commit.
	Rollback(ctx context.Context) error

	// JobRepository is bound to the current transaction.
	JobRepository() JobRepository

	// UserRepository is bound to the current transaction.
	UserRepository() UserRepository
}
