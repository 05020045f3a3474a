package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetActiveJobsQueryIsNotConstructed = errors.New(
	"GetActiveJobsQuery must be created via NewGetActiveJobsQuery constructor",
)

// GetActiveJobsQuery retrieves every job that has not been delivered yet,
// pending and in flight alike.
type GetActiveJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveJobsQuery creates a query for the active job board.
func NewGetActiveJobsQuery() GetActiveJobsQuery {
	return GetActiveJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveJobsQueryIsNotConstructed)
}

// GetActiveJobsQueryResponse represents one active job in the read model.
// WorkerID is zero while the job is still looking for a courier.
type GetActiveJobsQueryResponse struct {
	JobID      int64
	Stage      string
	WorkerID   int64
	NoticeText string
}
