// Package postgres stores the job board in PostgreSQL through GORM.
//
// A GormUnitOfWork wraps one database transaction. Repositories handed out
// while the transaction is active run inside it and load rows with
// SELECT ... FOR UPDATE, so two commands changing the same job queue up on the
// row lock instead of overwriting each other:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	j, err := uow.JobRepository().Get(ctx, id) // row locked until commit
//	if err != nil {
//	    return err
//	}
//	if err = j.Approve(workerID); err != nil {
//	    return err
//	}
//	if err = uow.JobRepository().Update(ctx, j); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories obtained without Begin use the plain connection and take no locks.
package postgres

import (
	"context"

	"jobboard/internal/adapters/out/postgres/jobrepo"
	"jobboard/internal/adapters/out/postgres/userrepo"
	"jobboard/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates units of work sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork is not safe for concurrent use; create one per command.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. A second Begin on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit fails with gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback does nothing when no transaction is active, so it can be deferred
// right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	if uow.tx != nil {
		return jobrepo.NewGormJobRepository(uow.tx, true)
	}
	return jobrepo.NewGormJobRepository(uow.db, false)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	if uow.tx != nil {
		return userrepo.NewGormUserRepository(uow.tx, true)
	}
	return userrepo.NewGormUserRepository(uow.db, false)
}
