// Package jobrepo persists Job aggregates: one row per job in "jobs" and one
// row per application in "job_applications".
package jobrepo

import (
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is a row of the jobs table. The date and times are stored as the
// poster wrote them, without a zone.
type JobDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Title        string           `gorm:"type:varchar(255);not null"`
	Description  string           `gorm:"type:text;not null;default:''"`
	Location     string           `gorm:"type:varchar(255);not null"`
	Pay          string           `gorm:"type:varchar(100);not null"`
	PostedBy     string           `gorm:"type:varchar(255);not null;index"`
	Date         string           `gorm:"type:char(10);not null"`
	StartMinute  int              `gorm:"type:smallint;not null"`
	EndMinute    int              `gorm:"type:smallint;not null"`
	CreatedAt    time.Time        `gorm:"autoCreateTime;index"`
	Applications []ApplicationDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

// ApplicationDTO is a row of job_applications. The composite primary key
// keeps one application per worker and job.
type ApplicationDTO struct {
	JobID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID string    `gorm:"type:varchar(255);primaryKey"`
	Status   int       `gorm:"type:smallint;not null"`
	Position int       `gorm:"type:int;not null"`
}

func (ApplicationDTO) TableName() string {
	return "job_applications"
}

func fromDomain(aggregate *job.Job) JobDTO {
	jobID := aggregate.ID().Bytes()
	applications := aggregate.Applications()
	dtos := make([]ApplicationDTO, 0, len(applications))

	for i, a := range applications {
		dtos = append(dtos, ApplicationDTO{
			JobID:    jobID,
			WorkerID: a.WorkerID().String(),
			Status:   int(a.Status()),
			Position: i,
		})
	}

	return JobDTO{
		ID:           jobID,
		Title:        aggregate.Title(),
		Description:  aggregate.Description(),
		Location:     aggregate.Location(),
		Pay:          aggregate.Pay(),
		PostedBy:     aggregate.PostedBy().String(),
		Date:         aggregate.Date().String(),
		StartMinute:  aggregate.StartTime().MinuteOfDay(),
		EndMinute:    aggregate.EndTime().MinuteOfDay(),
		Applications: dtos,
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	date, err := kernel.ParseCalendarDate(dto.Date)
	if err != nil {
		return nil, err
	}
	start, err := clockFromMinutes(dto.StartMinute)
	if err != nil {
		return nil, err
	}
	end, err := clockFromMinutes(dto.EndMinute)
	if err != nil {
		return nil, err
	}
	occurrence, err := job.NewOccurrence(date, start, end)
	if err != nil {
		return nil, err
	}

	applications := make([]*job.Application, 0, len(dto.Applications))
	for _, a := range dto.Applications {
		app, appErr := job.RestoreApplication(kernel.UserID(a.WorkerID), job.ApplicationStatus(a.Status))
		if appErr != nil {
			return nil, appErr
		}
		applications = append(applications, app)
	}

	return job.RestoreJob(id, job.Posting{
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Pay:         dto.Pay,
	}, kernel.UserID(dto.PostedBy), occurrence, applications)
}

func clockFromMinutes(m int) (kernel.ClockTime, error) {
	return kernel.NewClockTime(m/kernel.MinutesPerHour, m%kernel.MinutesPerHour)
}
