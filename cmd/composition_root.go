package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/postgres/historyrepo"
	"dispatch/internal/adapters/out/postgres/loyaltyrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"
	"dispatch/internal/notifications"
	"dispatch/internal/pkg/keyed"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// CompositionRoot wires the adapters, domain services and use case handlers
// into one object graph. The deadline scheduler is built before the claim
// arbiter and bound to it afterwards, since each needs the other.
type CompositionRoot struct {
	dispatcher *notifications.Dispatcher
	jobManager *jobs.JobManager
	server     *httpin.Server
}

// NewCompositionRoot assembles the application from its parts. The notifier
// and the database handle are opened by the caller, which also owns closing
// them.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	deadline, err := cfg.AcceptDeadline()
	if err != nil {
		return nil, err
	}
	operators, err := cfg.Operators()
	if err != nil {
		return nil, err
	}
	buffer, err := cfg.NoticeBuffer()
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&loyaltyrepo.AccountDTO{}, &historyrepo.RecordDTO{}); err != nil {
		return nil, err
	}

	jobStore := memory.NewJobStore()
	workers := memory.NewWorkerRegistry()
	directory := memory.NewCustomerDirectory()
	accounts := loyaltyrepo.NewGormLoyaltyRepository(gormDB)
	records := historyrepo.NewGormHistoryRepository(gormDB)

	dispatcher := notifications.NewDispatcher(notifier, operators, buffer, logger)
	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	jobGates := keyed.NewMutex[kernel.JobID]()
	phoneGates := keyed.NewMutex[string]()
	picker := services.NewReassignmentPicker()
	generator := services.NewPromoCodeGenerator()

	scheduler := jobs.NewDeadlineScheduler(deadline, jobStore, workers, picker, dispatcher, logger)

	claimHandler := commands.NewClaimJobCommandHandler(jobGates, jobStore, workers, dispatcher, scheduler, collector)
	scheduler.BindClaimer(&claimHandler)

	accrualHandler := commands.NewAccrueLoyaltyCommandHandler(phoneGates, accounts, generator, dispatcher)
	offerHandler := commands.NewOfferPendingJobsCommandHandler(jobStore, workers, dispatcher, scheduler)

	submitHandler := commands.NewSubmitJobCommandHandler(jobStore, workers, directory, dispatcher, scheduler, collector)
	advanceHandler := commands.NewAdvanceStageCommandHandler(
		jobGates, jobStore, workers, records, &accrualHandler, &offerHandler, dispatcher, collector)
	registerHandler := commands.NewRegisterWorkerCommandHandler(workers)
	removeHandler := commands.NewRemoveWorkerCommandHandler(workers)
	contactHandler := commands.NewSetWorkerContactCommandHandler(workers, &offerHandler)
	availabilityHandler := commands.NewSetWorkerAvailabilityCommandHandler(workers, &offerHandler)

	statsHandler := queries.NewGetWorkerStatsQueryHandler(gormDB)
	loyaltyHandler := queries.NewGetLoyaltyAccountQueryHandler(gormDB)
	activeJobsHandler := queries.NewGetActiveJobsQueryHandler(jobStore)

	report := jobs.NewDailyReportJob(statsHandler, dispatcher, logger)

	server := httpin.NewServer(
		cfg.IntakeToken,
		submitHandler,
		claimHandler,
		advanceHandler,
		registerHandler,
		removeHandler,
		contactHandler,
		availabilityHandler,
		loyaltyHandler,
		activeJobsHandler,
		statsHandler,
		queries.NewGetOverviewQueryHandler(jobStore, workers),
	)

	return &CompositionRoot{
		dispatcher: dispatcher,
		jobManager: jobs.NewJobManager(scheduler, report),
		server:     server,
	}, nil
}

// Start launches the notification consumer and the scheduled jobs.
func (c *CompositionRoot) Start() error {
	c.dispatcher.Start()
	return c.jobManager.StartAll()
}

// Stop halts the scheduled jobs, cancels outstanding deadline timers and
// drains the notification queue.
func (c *CompositionRoot) Stop() {
	c.jobManager.StopAll()
	c.dispatcher.Stop()
}

// Server returns the HTTP adapter.
func (c *CompositionRoot) Server() *httpin.Server {
	return c.server
}
