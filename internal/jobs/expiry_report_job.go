package jobs

import (
	"context"
	"log/slog"

	"jobboard/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultExpiryReportSchedule runs the report at the start of every minute.
const DefaultExpiryReportSchedule = "0 * * * * *"

// SummaryHandler produces the counts the report logs.
type SummaryHandler interface {
	Handle(ctx context.Context, query queries.GetJobBoardSummaryQuery) (queries.JobBoardSummary, error)
}

// ExpiryReportJob periodically logs how many jobs are open, filled, and
// past their end time without an approved worker. It only reads.
type ExpiryReportJob struct {
	handler  SummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExpiryReportJob creates the job. schedule is a six-field cron spec with
// seconds; empty means DefaultExpiryReportSchedule.
func NewExpiryReportJob(handler SummaryHandler, schedule string, logger *slog.Logger) *ExpiryReportJob {
	if schedule == "" {
		schedule = DefaultExpiryReportSchedule
	}
	return &ExpiryReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "expiry_report_job"),
	}
}

// Start registers the report with the scheduler and starts it.
func (j *ExpiryReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report. Failures are logged, never returned, so a bad
// tick does not stop later ones.
func (j *ExpiryReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetJobBoardSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Expiry report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Job board summary",
		slog.Int("total", summary.Total),
		slog.Int("open", summary.Open),
		slog.Int("filled", summary.Filled),
		slog.Int("expired_unfilled", summary.ExpiredUnfilled),
		slog.Int("pending_applications", summary.PendingApplications),
	)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ExpiryReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Expiry report job stopped")
}
