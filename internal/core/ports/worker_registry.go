package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
)

// WorkerRegistry defines the contract for the courier roster.
// The registry is the single authority on each courier's availability and
// current assignment: every mutation is atomic with respect to every other,
// so a courier can never be marked busy for two jobs at once. Implementations
// return defensive copies; mutating a returned aggregate has no effect on
// the registry.
type WorkerRegistry interface {
	// Add registers a new courier.
	// Returns an error if a courier with the same ID is already registered.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Remove deletes a courier from the roster.
	Remove(ctx context.Context, id kernel.WorkerID) error

	// Get retrieves a courier by ID.
	Get(ctx context.Context, id kernel.WorkerID) (*worker.Worker, error)

	// List retrieves every registered courier.
	List(ctx context.Context) ([]*worker.Worker, error)

	// ListEligible retrieves the couriers who can currently be offered jobs:
	// Free with a contact handle on file.
	ListEligible(ctx context.Context) ([]*worker.Worker, error)

	// MarkBusy atomically checks that the courier can take a job and assigns
	// it. Fails with the worker aggregate's errors if the courier is already
	// carrying a job or is off shift.
	MarkBusy(ctx context.Context, id kernel.WorkerID, jobID kernel.JobID) error

	// MarkFree atomically releases the courier's current assignment.
	MarkFree(ctx context.Context, id kernel.WorkerID) error

	// SetContactHandle updates the courier's phone or username.
	SetContactHandle(ctx context.Context, id kernel.WorkerID, handle string) error

	// SetAvailability puts the courier on or off shift. Fails with
	// worker.ErrWorkerIsBusy while the courier is carrying a job.
	SetAvailability(ctx context.Context, id kernel.WorkerID, available bool) error
}
