package commands

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/keyed"
)

// AdvanceStageCommandHandler walks a job through its delivery lifecycle.
// Only the assigned courier can advance a job, and only to the immediate
// next stage. Completion triggers the full close-out: the courier is freed,
// a history record is appended, loyalty is accrued and the still-pending
// jobs are re-offered to the freed courier.
type AdvanceStageCommandHandler struct {
	gates     *keyed.Mutex[kernel.JobID]
	jobs      ports.JobStore
	workers   ports.WorkerRegistry
	records   ports.DeliveryHistory
	accruer   LoyaltyAccruer
	offerer   PendingOfferer
	messenger Messenger
	collector *metrics.Collector
}

// NewAdvanceStageCommandHandler creates a handler for lifecycle reports.
func NewAdvanceStageCommandHandler(
	gates *keyed.Mutex[kernel.JobID],
	jobs ports.JobStore,
	workers ports.WorkerRegistry,
	records ports.DeliveryHistory,
	accruer LoyaltyAccruer,
	offerer PendingOfferer,
	messenger Messenger,
	collector *metrics.Collector,
) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		gates:     gates,
		jobs:      jobs,
		workers:   workers,
		records:   records,
		accruer:   accruer,
		offerer:   offerer,
		messenger: messenger,
		collector: collector,
	}
}

// Handle processes a lifecycle report.
//
// Outcomes:
//   - unknown job: errs.ObjectNotFoundError
//   - reporter is not the assignee: job.ErrNotAssignedWorker, state unchanged
//   - target out of order: error wrapping job.ErrInvalidStageTransition
//   - intermediate stage: persisted, customer notified
//   - Completed: history appended, job removed, courier freed, loyalty
//     accrued, everyone notified, pending jobs re-offered to the courier
func (h *AdvanceStageCommandHandler) Handle(ctx context.Context, cmd AdvanceStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.gates.Lock(cmd.JobID())
	defer unlock()

	aggregate, err := h.jobs.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = aggregate.Advance(cmd.WorkerID(), cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() != job.Completed {
		if err = h.jobs.Update(ctx, aggregate); err != nil {
			return err
		}
		h.notifyProgress(cmd, aggregate)
		return nil
	}

	return h.complete(ctx, cmd, aggregate)
}

// complete closes out a delivered job. The history append is the one side
// effect that can abort completion; everything after it is best effort and
// must not bring a delivered order back.
func (h *AdvanceStageCommandHandler) complete(ctx context.Context, cmd AdvanceStageCommand, aggregate *job.Job) error {
	record, err := history.NewRecord(cmd.JobID(), cmd.WorkerID(), aggregate.DeliveryFee(), time.Now())
	if err != nil {
		return err
	}
	if err = h.records.Append(ctx, record); err != nil {
		return err
	}

	if err = h.jobs.Remove(ctx, cmd.JobID()); err != nil {
		return err
	}

	courierName := fmt.Sprintf("courier %d", cmd.WorkerID().Int64())
	if claimant, getErr := h.workers.Get(ctx, cmd.WorkerID()); getErr == nil {
		courierName = claimant.Name()
	}
	_ = h.workers.MarkFree(ctx, cmd.WorkerID())

	h.collector.RecordCompleted()

	if phone := aggregate.CustomerPhone(); phone != nil && aggregate.DishSubtotal() > 0 {
		_ = h.accruer.Accrue(ctx, *phone, aggregate.DishSubtotal(), aggregate.CustomerRef())
	}

	jobNumber := cmd.JobID().Int64()
	if ref := aggregate.CustomerRef(); ref != nil {
		h.messenger.ToChat(*ref, ports.Notice{
			Text: fmt.Sprintf("Your order #%d has been delivered. Thank you!", jobNumber),
		})
	}
	h.messenger.ToOperators(ports.Notice{
		Text: fmt.Sprintf("Order #%d was delivered by %s.", jobNumber, courierName),
	})

	return h.offerer.OfferPending(ctx, cmd.WorkerID())
}

// notifyProgress tells the customer how far the delivery got and forwards
// the delivery coordinate to the courier once the trip starts.
func (h *AdvanceStageCommandHandler) notifyProgress(cmd AdvanceStageCommand, aggregate *job.Job) {
	jobNumber := cmd.JobID().Int64()

	if cmd.Target() == job.EnRoute {
		if location := aggregate.Location(); location != nil {
			h.messenger.ToChat(cmd.WorkerID().Int64(), ports.Notice{
				Text:     fmt.Sprintf("Delivery point for order #%d.", jobNumber),
				Location: location,
			})
		}
	}

	ref := aggregate.CustomerRef()
	if ref == nil {
		return
	}

	var text string
	switch cmd.Target() {
	case job.PickedUp:
		text = fmt.Sprintf("Your order #%d has been picked up.", jobNumber)
	case job.EnRoute:
		text = fmt.Sprintf("Your order #%d is on its way.", jobNumber)
	case job.Arrived:
		text = fmt.Sprintf("The courier has arrived with your order #%d.", jobNumber)
	default:
		return
	}

	h.messenger.ToChat(*ref, ports.Notice{Text: text})
}
