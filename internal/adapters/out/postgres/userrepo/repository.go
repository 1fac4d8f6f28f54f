package userrepo

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository.
type GormUserRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewGormUserRepository returns a repository over db. With forUpdate, Get
// locks the row until the transaction ends.
func NewGormUserRepository(db *gorm.DB, forUpdate bool) *GormUserRepository {
	return &GormUserRepository{
		db:        db,
		forUpdate: forUpdate,
	}
}

// Add reports a taken username as a conflict.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("username", "is already taken", err)
		}
		return err
	}

	return nil
}

// Update stores the role, password hash and availability. Usernames never change.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("password_hash", "role", "availability").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userId", aggregate.ID())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UserID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "userId", id, "id = ?", id.String())
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.first(ctx, "username", username, "username = ?", username)
}

func (r *GormUserRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*user.User, error) {
	db := r.db.WithContext(ctx)
	if r.forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto UserDTO
	if err := db.Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause(param, key, err)
		}
		return nil, err
	}

	return toDomain(dto)
}
