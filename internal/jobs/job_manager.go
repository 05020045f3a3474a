package jobs

import (
	"fmt"
)

// JobManager coordinates the background machinery: the per-job deadline
// timers and the scheduled daily report.
type JobManager struct {
	scheduler *DeadlineScheduler
	report    *DailyReportJob
}

// NewJobManager creates a manager over the already constructed jobs.
func NewJobManager(scheduler *DeadlineScheduler, report *DailyReportJob) *JobManager {
	return &JobManager{
		scheduler: scheduler,
		report:    report,
	}
}

// StartAll starts the scheduled jobs. Deadline timers are armed on demand
// by the command handlers, so there is nothing to start for the scheduler.
func (jm *JobManager) StartAll() error {
	if err := jm.report.Start(); err != nil {
		return fmt.Errorf("failed to start daily report job: %w", err)
	}
	return nil
}

// StopAll stops the report job and cancels every armed deadline timer.
func (jm *JobManager) StopAll() {
	jm.report.Stop()
	jm.scheduler.Shutdown()
}
