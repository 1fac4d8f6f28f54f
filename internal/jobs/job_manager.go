package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiryReportJob *ExpiryReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	summaryHandler SummaryHandler,
	expiryReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiryReportJob: NewExpiryReportJob(summaryHandler, expiryReportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiryReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start expiry report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expiryReportJob.Stop()
}
