package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobboard/internal/adapters/out/postgres/jobrepo"
	"jobboard/internal/adapters/out/postgres/userrepo"
	"jobboard/internal/core/domain/model/job"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to dsn. Driver errors such as unique violations are
// translated to gorm's portable errors (gorm.ErrDuplicatedKey).
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(slog.NewLogLogger(logger.Handler(), slog.LevelWarn), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema.
//
// Besides the tables it creates a partial unique index allowing at most one
// approved application per job, so the database rejects a second approval
// even if a writer skipped the row lock.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&jobrepo.JobDTO{}, &jobrepo.ApplicationDTO{}, &userrepo.UserDTO{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	err := db.Exec(fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_job_applications_one_approved
		 ON job_applications (job_id) WHERE status = %d`, int(job.Approved),
	)).Error
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}
