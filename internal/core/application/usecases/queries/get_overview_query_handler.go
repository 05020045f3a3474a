package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetOverviewQueryHandler counts couriers and active jobs for operators.
// Both sources are in-memory stores, so the snapshot is cheap and may be
// slightly stale by the time it is rendered.
type GetOverviewQueryHandler struct {
	jobs    ports.JobStore
	workers ports.WorkerRegistry
}

// NewGetOverviewQueryHandler creates a handler for the operator snapshot.
func NewGetOverviewQueryHandler(jobs ports.JobStore, workers ports.WorkerRegistry) GetOverviewQueryHandler {
	return GetOverviewQueryHandler{jobs: jobs, workers: workers}
}

// Handle executes the snapshot.
func (h GetOverviewQueryHandler) Handle(
	ctx context.Context,
	query GetOverviewQuery,
) (GetOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOverviewQueryResponse{}, err
	}

	roster, err := h.workers.List(ctx)
	if err != nil {
		return GetOverviewQueryResponse{}, err
	}

	board, err := h.jobs.List(ctx)
	if err != nil {
		return GetOverviewQueryResponse{}, err
	}

	snapshot := GetOverviewQueryResponse{Workers: len(roster), ActiveJobs: len(board)}
	for _, courier := range roster {
		if courier.IsEligible() {
			snapshot.EligibleWorkers++
		}
		if courier.CurrentJob() != nil {
			snapshot.BusyWorkers++
		}
	}
	for _, aggregate := range board {
		if aggregate.IsPending() {
			snapshot.PendingJobs++
		}
	}

	return snapshot, nil
}
