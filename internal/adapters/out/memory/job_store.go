// Package memory provides the in-process adapters for live dispatch state.
// Active jobs and the courier roster are working state, not durable data:
// they live in memory and are rebuilt from the outside world on restart,
// while completed deliveries and loyalty accounts go to Postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// JobStore implements ports.JobStore over a mutex-protected map. Aggregates
// are cloned on the way in and out, so callers never share mutable state
// with the store.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[kernel.JobID]*job.Job
}

// NewJobStore creates an empty job store.
func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[kernel.JobID]*job.Job),
	}
}

// Add saves a new job. Re-adding an existing job id is rejected.
func (s *JobStore) Add(_ context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidError("jobID")
	}

	s.jobs[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Update replaces the stored state of an existing job.
func (s *JobStore) Update(_ context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("job", aggregate.ID().Int64())
	}

	s.jobs[aggregate.ID()] = aggregate.Clone()
	return nil
}

// Get retrieves a job by id.
func (s *JobStore) Get(_ context.Context, id kernel.JobID) (*job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	aggregate, ok := s.jobs[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("job", id.Int64())
	}

	return aggregate.Clone(), nil
}

// Remove deletes a job. Removing an unknown id is an error.
func (s *JobStore) Remove(_ context.Context, id kernel.JobID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return errs.NewObjectNotFoundError("job", id.Int64())
	}

	delete(s.jobs, id)
	return nil
}

// List returns every active job, ordered by id.
func (s *JobStore) List(_ context.Context) ([]*job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(*job.Job) bool { return true }), nil
}

// ListPending returns the jobs still waiting for a courier, ordered by id.
func (s *JobStore) ListPending(_ context.Context) ([]*job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(aggregate *job.Job) bool { return aggregate.IsPending() }), nil
}

// collect must be called with at least a read lock held.
func (s *JobStore) collect(keep func(*job.Job) bool) []*job.Job {
	result := make([]*job.Job, 0, len(s.jobs))
	for _, aggregate := range s.jobs {
		if keep(aggregate) {
			result = append(result, aggregate.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result
}
