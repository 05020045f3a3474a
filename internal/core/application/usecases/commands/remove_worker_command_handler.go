package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// RemoveWorkerCommandHandler takes couriers off the roster.
type RemoveWorkerCommandHandler struct {
	workers ports.WorkerRegistry
}

// NewRemoveWorkerCommandHandler creates a handler for courier removal.
func NewRemoveWorkerCommandHandler(workers ports.WorkerRegistry) RemoveWorkerCommandHandler {
	return RemoveWorkerCommandHandler{
		workers: workers,
	}
}

// Handle processes the removal.
func (h *RemoveWorkerCommandHandler) Handle(ctx context.Context, cmd RemoveWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.workers.Remove(ctx, cmd.WorkerID())
}
