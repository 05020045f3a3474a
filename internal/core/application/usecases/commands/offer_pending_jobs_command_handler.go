package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// OfferPendingJobsCommandHandler re-offers the still-unclaimed jobs to a
// courier who just became eligible: finished a delivery, came on shift or
// provided a contact handle. Each re-offered job gets a fresh deadline
// timer, so it is auto-assigned again if nobody reacts.
type OfferPendingJobsCommandHandler struct {
	jobs      ports.JobStore
	workers   ports.WorkerRegistry
	messenger Messenger
	scheduler DeadlineScheduler
}

// NewOfferPendingJobsCommandHandler creates a handler for pending re-offers.
func NewOfferPendingJobsCommandHandler(
	jobs ports.JobStore,
	workers ports.WorkerRegistry,
	messenger Messenger,
	scheduler DeadlineScheduler,
) OfferPendingJobsCommandHandler {
	return OfferPendingJobsCommandHandler{
		jobs:      jobs,
		workers:   workers,
		messenger: messenger,
		scheduler: scheduler,
	}
}

// OfferPending adapts the handler to the PendingOfferer interface consumed
// by the completion and availability flows.
func (h *OfferPendingJobsCommandHandler) OfferPending(ctx context.Context, workerID kernel.WorkerID) error {
	cmd, err := NewOfferPendingJobsCommand(workerID)
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}

// Handle processes the re-offer. A courier who turns out not to be eligible
// after all gets nothing and the call succeeds.
func (h *OfferPendingJobsCommandHandler) Handle(ctx context.Context, cmd OfferPendingJobsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidate, err := h.workers.Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}
	if !candidate.IsEligible() {
		return nil
	}

	pending, err := h.jobs.ListPending(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		jobID := aggregate.ID()
		h.messenger.ToChat(candidate.ID().Int64(), ports.Notice{
			Text:      aggregate.NoticeText(),
			Location:  aggregate.Location(),
			AcceptJob: &jobID,
		})
		h.scheduler.Arm(jobID)
	}

	return nil
}
