// Package commands contains the write use cases of the job board. Every
// command is a validated value; its handler opens a unit of work, changes one
// aggregate, commits, and then publishes what happened.
package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// Unit of work views used by command handlers. A handler asks only for the
// repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides the job repository bound to the transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// UserRepoFactory provides the user repository bound to the transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobUoW is used by commands that change jobs and their applications.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates job units of work.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// UserUoW is used by commands that change accounts and availability.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user units of work.
	UserUoWFactory interface {
		Create() UserUoW
	}
)

// JobUoWFactoryFunc adapts a plain function to JobUoWFactory.
type JobUoWFactoryFunc func() JobUoW

func (f JobUoWFactoryFunc) Create() JobUoW { return f() }

// UserUoWFactoryFunc adapts a plain function to UserUoWFactory.
type UserUoWFactoryFunc func() UserUoW

func (f UserUoWFactoryFunc) Create() UserUoW { return f() }
