package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// Claimer is the slice of the claim arbiter the scheduler needs to force an
// assignment. Satisfied by commands.ClaimJobCommandHandler.
type Claimer interface {
	Handle(ctx context.Context, cmd commands.ClaimJobCommand) error
}

// DeadlineScheduler arms one timer per broadcast job. When the timer fires
// and the job is still unclaimed, a random eligible courier is assigned by
// force through the claim arbiter. A courier's claim disarms the timer.
//
// The scheduler and the claim arbiter reference each other, so the claimer
// is bound after construction: build the scheduler, build the arbiter with
// it, then call BindClaimer.
type DeadlineScheduler struct {
	delay   time.Duration
	jobs    ports.JobStore
	workers ports.WorkerRegistry
	picker  services.ReassignmentPicker
	logger  *slog.Logger

	mu      sync.Mutex
	timers  map[kernel.JobID]*time.Timer
	claimer Claimer

	messenger commands.Messenger
}

// NewDeadlineScheduler creates a scheduler with the given acceptance delay.
func NewDeadlineScheduler(
	delay time.Duration,
	jobs ports.JobStore,
	workers ports.WorkerRegistry,
	picker services.ReassignmentPicker,
	messenger commands.Messenger,
	logger *slog.Logger,
) *DeadlineScheduler {
	return &DeadlineScheduler{
		delay:     delay,
		jobs:      jobs,
		workers:   workers,
		picker:    picker,
		messenger: messenger,
		logger:    logger.With("component", "deadline_scheduler"),
		timers:    make(map[kernel.JobID]*time.Timer),
	}
}

// BindClaimer wires the claim arbiter in. Must be called before the first
// Arm.
func (s *DeadlineScheduler) BindClaimer(claimer Claimer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claimer = claimer
}

// Arm starts (or restarts) the acceptance timer for a job.
func (s *DeadlineScheduler) Arm(jobID kernel.JobID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[jobID]; ok {
		timer.Stop()
	}
	s.timers[jobID] = time.AfterFunc(s.delay, func() {
		s.fire(jobID)
	})
}

// Disarm cancels the timer for a job, if one is armed.
func (s *DeadlineScheduler) Disarm(jobID kernel.JobID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[jobID]; ok {
		timer.Stop()
		delete(s.timers, jobID)
	}
}

// Shutdown cancels every armed timer.
func (s *DeadlineScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for jobID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, jobID)
	}
}

// fire runs when a job's acceptance window closes.
func (s *DeadlineScheduler) fire(jobID kernel.JobID) {
	s.mu.Lock()
	delete(s.timers, jobID)
	claimer := s.claimer
	s.mu.Unlock()

	ctx := context.Background()

	aggregate, err := s.jobs.Get(ctx, jobID)
	if err != nil || !aggregate.IsPending() {
		return
	}

	eligible, err := s.workers.ListEligible(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Deadline assignment failed to list couriers",
			"job_id", jobID.Int64(), "error", err)
		return
	}

	chosen, err := s.picker.Pick(eligible)
	if err != nil {
		if errors.Is(err, services.ErrNoEligibleWorkers) {
			s.messenger.ToOperators(ports.Notice{
				Text: fmt.Sprintf(
					"Order #%d is past its acceptance deadline and no couriers are available.",
					jobID.Int64()),
			})
			return
		}
		s.logger.ErrorContext(ctx, "Deadline assignment failed to pick a courier",
			"job_id", jobID.Int64(), "error", err)
		return
	}

	cmd, err := commands.NewForcedClaimJobCommand(jobID, chosen.ID())
	if err != nil {
		s.logger.ErrorContext(ctx, "Deadline assignment built an invalid claim",
			"job_id", jobID.Int64(), "error", err)
		return
	}

	if err = claimer.Handle(ctx, cmd); err != nil {
		// Somebody claimed in the window between the check and the claim.
		if errors.Is(err, job.ErrAlreadyClaimed) {
			return
		}
		s.logger.ErrorContext(ctx, "Deadline assignment failed",
			"job_id", jobID.Int64(), "worker_id", chosen.ID().Int64(), "error", err)
	}
}
