// Package jobs provides scheduled background tasks for the job board.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. ExpiryReportJob - logs how many jobs are open, filled, and expired
// without an approved worker. It reads through the GetJobBoardSummary query
// and never changes a job; expired jobs stay on the board.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and the next tick runs as usual. A malformed
// schedule fails StartAll.
package jobs
