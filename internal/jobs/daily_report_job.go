package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
)

// DailyReportJob sends the operators a per-courier earnings summary at the
// end of every day.
type DailyReportJob struct {
	handler   queries.GetWorkerStatsQueryHandler
	messenger commands.Messenger
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDailyReportJob creates the end-of-day report job.
func NewDailyReportJob(
	handler queries.GetWorkerStatsQueryHandler,
	messenger commands.Messenger,
	logger *slog.Logger,
) *DailyReportJob {
	return &DailyReportJob{
		handler:   handler,
		messenger: messenger,
		cron:      cron.New(),
		logger:    logger.With("component", "daily_report_job"),
	}
}

// Start schedules the report for 23:59 every day.
func (j *DailyReportJob) Start() error {
	_, err := j.cron.AddFunc("59 23 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily report job started (23:59 every day)")
	return nil
}

// Stop stops the report job.
func (j *DailyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily report job stopped")
}

func (j *DailyReportJob) run() {
	ctx := context.Background()

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query, err := queries.NewGetWorkerStatsQuery(from, from.Add(24*time.Hour))
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report query construction failed", "error", err)
		return
	}

	stats, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily report query failed", "error", err)
		return
	}

	j.messenger.ToOperators(ports.Notice{Text: formatReport(now, stats)})
}

// formatReport renders the day's totals as a plain text message.
func formatReport(day time.Time, stats []queries.GetWorkerStatsQueryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deliveries for %s:\n", day.Format("2006-01-02"))

	if len(stats) == 0 {
		b.WriteString("no completed deliveries today.")
		return b.String()
	}

	for _, row := range stats {
		fmt.Fprintf(&b, "Courier %d: %d deliveries, %d earned\n",
			row.WorkerID, row.Deliveries, row.TotalFees)
	}
	return strings.TrimRight(b.String(), "\n")
}
