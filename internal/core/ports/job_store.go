package ports

import (
	"context"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
)

// JobStore defines the contract for the active job set.
// A job lives in the store from submission until completion; completed jobs
// are removed. Implementations return defensive copies; mutating a returned
// aggregate has no effect until it is written back with Update.
type JobStore interface {
	// Add inserts a newly submitted job.
	// Returns an error if a job with the same ID is already stored.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job by ID.
	Get(ctx context.Context, id kernel.JobID) (*job.Job, error)

	// Remove deletes a job from the active set.
	Remove(ctx context.Context, id kernel.JobID) error

	// List retrieves every active job.
	List(ctx context.Context) ([]*job.Job, error)

	// ListPending retrieves the jobs still waiting for a courier:
	// Broadcasting with no assignee.
	ListPending(ctx context.Context) ([]*job.Job, error)
}
