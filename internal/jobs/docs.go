// Package jobs provides the background machinery of the dispatch engine.
//
// # Deadline timers
//
// DeadlineScheduler keeps one timer per broadcast job. Command handlers arm
// a timer when a job is offered and disarm it when a claim wins. A timer
// that fires while the job is still unclaimed picks a random eligible
// courier and assigns the job by force through the claim arbiter, so no
// order waits forever.
//
// # Scheduled jobs
//
// DailyReportJob runs at 23:59 every day via github.com/robfig/cron/v3 and
// sends the operators a per-courier earnings summary.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(scheduler, reportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A deadline firing for a job that was claimed in the meantime is a no-op.
// All other failures inside background jobs are logged and swallowed; the
// background machinery never crashes the process.
package jobs
