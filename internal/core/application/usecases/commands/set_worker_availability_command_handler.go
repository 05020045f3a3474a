package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// SetWorkerAvailabilityCommandHandler puts couriers on and off shift.
// Going off shift is rejected while the courier is carrying a job. Coming
// on shift re-offers the pending jobs, since the courier may now be eligible.
type SetWorkerAvailabilityCommandHandler struct {
	workers ports.WorkerRegistry
	offerer PendingOfferer
}

// NewSetWorkerAvailabilityCommandHandler creates a handler for shift toggles.
func NewSetWorkerAvailabilityCommandHandler(workers ports.WorkerRegistry, offerer PendingOfferer) SetWorkerAvailabilityCommandHandler {
	return SetWorkerAvailabilityCommandHandler{
		workers: workers,
		offerer: offerer,
	}
}

// Handle processes the shift toggle.
func (h *SetWorkerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetWorkerAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.workers.SetAvailability(ctx, cmd.WorkerID(), cmd.Available()); err != nil {
		return err
	}

	if !cmd.Available() {
		return nil
	}

	return h.offerer.OfferPending(ctx, cmd.WorkerID())
}
