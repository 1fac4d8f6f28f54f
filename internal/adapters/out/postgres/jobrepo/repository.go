package jobrepo

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository.
type GormJobRepository struct {
	db *gorm.DB
	// forUpdate makes Get lock the job row until the transaction ends.
	forUpdate bool
}

// NewGormJobRepository returns a repository over db. Pass forUpdate when db
// is a transaction in which the loaded jobs are about to be changed.
func NewGormJobRepository(db *gorm.DB, forUpdate bool) *GormJobRepository {
	return &GormJobRepository{
		db:        db,
		forUpdate: forUpdate,
	}
}

func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("jobId", "already exists", err)
		}
		return err
	}

	return nil
}

// Update rewrites the job row and upserts its applications.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("title", "description", "location", "pay", "posted_by", "date", "start_minute", "end_minute").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("jobId", aggregate.ID())
	}

	if len(dto.Applications) == 0 {
		return nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}, {Name: "worker_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "position"}),
	}).Create(&dto.Applications).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("job", "already has an approved worker", err)
	}
	return err
}

// Get loads the job with its applications. With forUpdate the job row is
// locked, which serializes concurrent approvals of the same job.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if r.forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto JobDTO
	err := db.
		Preload("Applications", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("jobId", id, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the job; applications go with it through the cascade.
func (r *GormJobRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&JobDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("jobId", id)
	}
	return nil
}

func (r *GormJobRepository) List(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Preload("Applications", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).
		Order("created_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
