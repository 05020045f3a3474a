package commands

import (
	"context"

	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/core/ports"
)

// RegisterWorkerCommandHandler adds couriers to the roster. A new courier
// starts Free but without a contact handle, so offers only reach them after
// the handle arrives through SetWorkerContact.
type RegisterWorkerCommandHandler struct {
	workers ports.WorkerRegistry
}

// NewRegisterWorkerCommandHandler creates a handler for courier registration.
func NewRegisterWorkerCommandHandler(workers ports.WorkerRegistry) RegisterWorkerCommandHandler {
	return RegisterWorkerCommandHandler{
		workers: workers,
	}
}

// Handle processes the registration.
func (h *RegisterWorkerCommandHandler) Handle(ctx context.Context, cmd RegisterWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := worker.NewWorker(cmd.WorkerID(), cmd.Name())
	if err != nil {
		return err
	}

	return h.workers.Add(ctx, aggregate)
}
