package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetActiveJobsQueryHandler lists the in-flight jobs. Active jobs live in
// the job store rather than the database, so this query reads the store.
type GetActiveJobsQueryHandler struct {
	jobs ports.JobStore
}

// NewGetActiveJobsQueryHandler creates a handler for the active job board.
func NewGetActiveJobsQueryHandler(jobs ports.JobStore) GetActiveJobsQueryHandler {
	return GetActiveJobsQueryHandler{jobs: jobs}
}

// Handle executes the listing.
func (h GetActiveJobsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveJobsQuery,
) ([]GetActiveJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	board := make([]GetActiveJobsQueryResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		row := GetActiveJobsQueryResponse{
			JobID:      aggregate.ID().Int64(),
			Stage:      aggregate.Stage().String(),
			NoticeText: aggregate.NoticeText(),
		}
		if assignee := aggregate.Worker(); assignee != nil {
			row.WorkerID = assignee.Int64()
		}
		board = append(board, row)
	}

	return board, nil
}
