package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/keyed"
)

// ClaimJobCommandHandler is the single arbiter of job assignment. Every
// claim, whether a courier pressed accept or the deadline scheduler picked
// someone, runs through Handle under the job's exclusive gate, so exactly
// one claim can win and the job's assignee is written exactly once.
//
// The lock order is fixed: the job gate is taken first, the worker registry
// serializes internally. Nothing here ever takes a second job gate.
type ClaimJobCommandHandler struct {
	gates     *keyed.Mutex[kernel.JobID]
	jobs      ports.JobStore
	workers   ports.WorkerRegistry
	messenger Messenger
	scheduler DeadlineScheduler
	collector *metrics.Collector
}

// NewClaimJobCommandHandler creates the claim arbiter.
func NewClaimJobCommandHandler(
	gates *keyed.Mutex[kernel.JobID],
	jobs ports.JobStore,
	workers ports.WorkerRegistry,
	messenger Messenger,
	scheduler DeadlineScheduler,
	collector *metrics.Collector,
) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		gates:     gates,
		jobs:      jobs,
		workers:   workers,
		messenger: messenger,
		scheduler: scheduler,
		collector: collector,
	}
}

// Handle processes a claim.
//
// Outcomes:
//   - unknown job: errs.ObjectNotFoundError
//   - job already assigned to this courier: success, nothing changes
//   - job already assigned to another courier: job.ErrAlreadyClaimed
//   - courier busy or off shift: the worker aggregate's error, job untouched
//   - otherwise the claim wins: the courier is marked busy, the job moves to
//     Claimed, the deadline timer is cancelled and all parties are notified
func (h *ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.gates.Lock(cmd.JobID())
	defer unlock()

	aggregate, err := h.jobs.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if assignee := aggregate.Worker(); assignee != nil {
		if *assignee == cmd.WorkerID() {
			return nil
		}
		h.collector.RecordClaimRejected()
		return job.ErrAlreadyClaimed
	}

	claimant, err := h.workers.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = h.workers.MarkBusy(ctx, cmd.WorkerID(), cmd.JobID()); err != nil {
		return err
	}

	if err = h.claimAndStore(ctx, aggregate, cmd.WorkerID()); err != nil {
		// The courier must not stay busy for a job that was never assigned.
		_ = h.workers.MarkFree(ctx, cmd.WorkerID())
		return err
	}

	h.scheduler.Disarm(cmd.JobID())
	if cmd.Forced() {
		h.collector.RecordForcedAssignment()
	} else {
		h.collector.RecordClaimAccepted()
	}

	h.notify(cmd, aggregate, claimant)
	return nil
}

func (h *ClaimJobCommandHandler) claimAndStore(ctx context.Context, aggregate *job.Job, workerID kernel.WorkerID) error {
	if err := aggregate.Claim(workerID); err != nil {
		return err
	}
	return h.jobs.Update(ctx, aggregate)
}

func (h *ClaimJobCommandHandler) notify(cmd ClaimJobCommand, aggregate *job.Job, claimant *worker.Worker) {
	jobNumber := aggregate.ID().Int64()

	workerText := fmt.Sprintf("Order #%d is yours. Mark each stage as you go.", jobNumber)
	operatorText := fmt.Sprintf("Order #%d was accepted by %s.", jobNumber, claimant.Name())
	if cmd.Forced() {
		workerText = fmt.Sprintf("Order #%d has been assigned to you.", jobNumber)
		operatorText = fmt.Sprintf("Order #%d was assigned to %s after the acceptance deadline.",
			jobNumber, claimant.Name())
	}

	h.messenger.ToChat(claimant.ID().Int64(), ports.Notice{
		Text:     workerText,
		Location: aggregate.Location(),
	})
	h.messenger.ToOperators(ports.Notice{Text: operatorText})

	if ref := aggregate.CustomerRef(); ref != nil {
		contact := claimant.ContactHandle()
		if contact == "" {
			contact = claimant.Name()
		}
		h.messenger.ToChat(*ref, ports.Notice{
			Text: fmt.Sprintf("Your order #%d will be delivered by %s (%s).",
				jobNumber, claimant.Name(), contact),
		})
	}
}
