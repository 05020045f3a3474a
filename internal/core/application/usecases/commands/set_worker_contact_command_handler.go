package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// SetWorkerContactCommandHandler stores a courier's contact handle. Setting
// a handle can be the step that makes a Free courier eligible, so the
// pending jobs are re-offered afterwards.
type SetWorkerContactCommandHandler struct {
	workers ports.WorkerRegistry
	offerer PendingOfferer
}

// NewSetWorkerContactCommandHandler creates a handler for contact updates.
func NewSetWorkerContactCommandHandler(workers ports.WorkerRegistry, offerer PendingOfferer) SetWorkerContactCommandHandler {
	return SetWorkerContactCommandHandler{
		workers: workers,
		offerer: offerer,
	}
}

// Handle processes the contact update.
func (h *SetWorkerContactCommandHandler) Handle(ctx context.Context, cmd SetWorkerContactCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.workers.SetContactHandle(ctx, cmd.WorkerID(), cmd.ContactHandle()); err != nil {
		return err
	}

	return h.offerer.OfferPending(ctx, cmd.WorkerID())
}
