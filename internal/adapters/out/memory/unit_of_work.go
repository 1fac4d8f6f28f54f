package memory

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/ports"
)

// ErrNoTransaction is returned by Commit without a preceding Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes in a changeSet while holding the store's write
// lock. Repositories obtained before Begin act immediately, each call in its
// own short transaction.
//
// A UnitOfWork is not safe for concurrent use; create one per command.
type UnitOfWork struct {
	store   *Store
	changes *changeSet
}

// Begin blocks until no other unit of work is active. Calling it twice is a
// no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.changes != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.changes = newChangeSet(uow.store)
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.changes == nil {
		return ErrNoTransaction
	}

	uow.changes.apply()
	uow.changes = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards staged changes. Without an active transaction, for
// example after Commit, it does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.changes == nil {
		return nil
	}

	uow.changes = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) JobRepository() ports.JobRepository {
	return &jobRepository{uow: uow}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: uow}
}

// write runs fn against the active change set, or against a fresh one
// committed on success when no transaction is active.
func (uow *UnitOfWork) write(ctx context.Context, fn func(c *changeSet) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.changes != nil {
		return fn(uow.changes)
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	c := newChangeSet(uow.store)
	if err := fn(c); err != nil {
		return err
	}
	c.apply()
	return nil
}

// read runs fn against the active change set, or against committed state
// under the read lock.
func (uow *UnitOfWork) read(ctx context.Context, fn func(c *changeSet) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.changes != nil {
		return fn(uow.changes)
	}

	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()

	return fn(newChangeSet(uow.store))
}

type jobRepository struct {
	uow *UnitOfWork
}

func (r *jobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(c *changeSet) error { return c.addJob(aggregate) })
}

func (r *jobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(c *changeSet) error { return c.updateJob(aggregate) })
}

func (r *jobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	var out *job.Job
	err := r.uow.read(ctx, func(c *changeSet) error {
		var err error
		out, err = c.getJob(id)
		return err
	})
	return out, err
}

func (r *jobRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.uow.write(ctx, func(c *changeSet) error { return c.deleteJob(id) })
}

func (r *jobRepository) List(ctx context.Context) ([]*job.Job, error) {
	var out []*job.Job
	err := r.uow.read(ctx, func(c *changeSet) error {
		out = c.listJobs()
		return nil
	})
	return out, err
}

type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(c *changeSet) error { return c.addUser(aggregate) })
}

func (r *userRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.write(ctx, func(c *changeSet) error { return c.updateUser(aggregate) })
}

func (r *userRepository) Get(ctx context.Context, id kernel.UserID) (*user.User, error) {
	var out *user.User
	err := r.uow.read(ctx, func(c *changeSet) error {
		var err error
		out, err = c.getUser(id)
		return err
	})
	return out, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var out *user.User
	err := r.uow.read(ctx, func(c *changeSet) error {
		var err error
		out, err = c.getUserByUsername(username)
		return err
	})
	return out, err
}
