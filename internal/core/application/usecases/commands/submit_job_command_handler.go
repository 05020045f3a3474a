package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/errs"
)

// SubmitJobCommandHandler handles the business logic for job intake.
// Stores the job, broadcasts the offer to every eligible courier and arms
// the deadline timer. A submission with no eligible courier still succeeds:
// the job is parked pending and the operators are warned.
type SubmitJobCommandHandler struct {
	jobs      ports.JobStore
	workers   ports.WorkerRegistry
	directory ports.CustomerDirectory
	messenger Messenger
	scheduler DeadlineScheduler
	collector *metrics.Collector
}

// NewSubmitJobCommandHandler creates a handler for job intake operations.
func NewSubmitJobCommandHandler(
	jobs ports.JobStore,
	workers ports.WorkerRegistry,
	directory ports.CustomerDirectory,
	messenger Messenger,
	scheduler DeadlineScheduler,
	collector *metrics.Collector,
) SubmitJobCommandHandler {
	return SubmitJobCommandHandler{
		jobs:      jobs,
		workers:   workers,
		directory: directory,
		messenger: messenger,
		scheduler: scheduler,
		collector: collector,
	}
}

// Handle processes the job submission.
// The customer chat is resolved through the directory by phone; an unknown
// phone just leaves the job without a customer reference. The broadcast and
// the timer happen only when at least one eligible courier exists.
func (h *SubmitJobCommandHandler) Handle(ctx context.Context, cmd SubmitJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.CustomerChatID() != nil && cmd.CustomerPhone() != nil {
		if err := h.directory.Register(ctx, *cmd.CustomerChatID(), *cmd.CustomerPhone()); err != nil {
			return err
		}
	}

	customerRef, err := h.resolveCustomer(ctx, cmd)
	if err != nil {
		return err
	}

	aggregate, err := job.NewJob(
		cmd.JobID(),
		cmd.NoticeText(),
		cmd.DeliveryFee(),
		cmd.DishSubtotal(),
		cmd.CustomerPhone(),
		customerRef,
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = h.jobs.Add(ctx, aggregate); err != nil {
		return err
	}
	h.collector.RecordSubmitted()

	eligible, err := h.workers.ListEligible(ctx)
	if err != nil {
		return err
	}

	if len(eligible) == 0 {
		h.collector.RecordParked()
		h.messenger.ToOperators(ports.Notice{
			Text: fmt.Sprintf("No couriers are available for order #%d. The order stays pending.",
				cmd.JobID().Int64()),
		})
		return nil
	}

	jobID := cmd.JobID()
	offer := ports.Notice{
		Text:      aggregate.NoticeText(),
		Location:  aggregate.Location(),
		AcceptJob: &jobID,
	}
	for _, candidate := range eligible {
		h.messenger.ToChat(candidate.ID().Int64(), offer)
	}

	h.scheduler.Arm(jobID)
	return nil
}

// resolveCustomer looks the customer chat up by phone. The explicit chat id
// from the intake payload wins over the directory.
func (h *SubmitJobCommandHandler) resolveCustomer(ctx context.Context, cmd SubmitJobCommand) (*int64, error) {
	if cmd.CustomerChatID() != nil {
		return cmd.CustomerChatID(), nil
	}
	if cmd.CustomerPhone() == nil {
		return nil, nil
	}

	chatID, err := h.directory.Resolve(ctx, *cmd.CustomerPhone())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &chatID, nil
}
