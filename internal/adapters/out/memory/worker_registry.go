package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/worker"
	"dispatch/internal/pkg/errs"
)

// WorkerRegistry implements ports.WorkerRegistry over a mutex-protected map.
// Every read-modify-write runs under the lock, so two concurrent MarkBusy
// calls for the same courier cannot both succeed.
type WorkerRegistry struct {
	mu      sync.RWMutex
	workers map[kernel.WorkerID]*worker.Worker
}

// NewWorkerRegistry creates an empty courier roster.
func NewWorkerRegistry() *WorkerRegistry {
	return &WorkerRegistry{
		workers: make(map[kernel.WorkerID]*worker.Worker),
	}
}

// Add puts a courier on the roster. Re-adding an existing id is rejected.
func (r *WorkerRegistry) Add(_ context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workers[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidError("workerID")
	}

	r.workers[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Remove takes a courier off the roster.
func (r *WorkerRegistry) Remove(_ context.Context, id kernel.WorkerID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workers[id]; !ok {
		return errs.NewObjectNotFoundError("worker", id.Int64())
	}

	delete(r.workers, id)
	return nil
}

// Get retrieves a courier by id.
func (r *WorkerRegistry) Get(_ context.Context, id kernel.WorkerID) (*worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.workers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("worker", id.Int64())
	}

	return aggregate.Clone(), nil
}

// List returns the whole roster, ordered by id.
func (r *WorkerRegistry) List(_ context.Context) ([]*worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(*worker.Worker) bool { return true }), nil
}

// ListEligible returns the couriers who can receive offers right now,
// ordered by id.
func (r *WorkerRegistry) ListEligible(_ context.Context) ([]*worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(aggregate *worker.Worker) bool { return aggregate.IsEligible() }), nil
}

// MarkBusy assigns a job to a courier. Repeating the same pair succeeds;
// the call fails if the courier is carrying a different job or is off shift.
func (r *WorkerRegistry) MarkBusy(_ context.Context, id kernel.WorkerID, jobID kernel.JobID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.workers[id]
	if !ok {
		return errs.NewObjectNotFoundError("worker", id.Int64())
	}

	return aggregate.Assign(jobID)
}

// MarkFree releases a courier from their job. Freeing an already free
// courier succeeds, so completion and compensation paths can both call it.
func (r *WorkerRegistry) MarkFree(_ context.Context, id kernel.WorkerID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.workers[id]
	if !ok {
		return errs.NewObjectNotFoundError("worker", id.Int64())
	}

	if err := aggregate.Release(); err != nil {
		if errors.Is(err, worker.ErrWorkerNotBusy) {
			return nil
		}
		return err
	}
	return nil
}

// SetContactHandle stores a courier's contact handle.
func (r *WorkerRegistry) SetContactHandle(_ context.Context, id kernel.WorkerID, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.workers[id]
	if !ok {
		return errs.NewObjectNotFoundError("worker", id.Int64())
	}

	return aggregate.SetContactHandle(handle)
}

// SetAvailability puts a courier on or off shift.
func (r *WorkerRegistry) SetAvailability(_ context.Context, id kernel.WorkerID, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	aggregate, ok := r.workers[id]
	if !ok {
		return errs.NewObjectNotFoundError("worker", id.Int64())
	}

	return aggregate.SetAvailability(available)
}

// collect must be called with at least a read lock held.
func (r *WorkerRegistry) collect(keep func(*worker.Worker) bool) []*worker.Worker {
	result := make([]*worker.Worker, 0, len(r.workers))
	for _, aggregate := range r.workers {
		if keep(aggregate) {
			result = append(result, aggregate.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result
}
