package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetOverviewQueryIsNotConstructed = errors.New(
	"GetOverviewQuery must be created via NewGetOverviewQuery constructor",
)

// GetOverviewQuery retrieves the operator snapshot: courier headcounts and
// the size of the active job board.
type GetOverviewQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverviewQuery creates a query for the operator snapshot.
func NewGetOverviewQuery() GetOverviewQuery {
	return GetOverviewQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetOverviewQueryIsNotConstructed)
}

// GetOverviewQueryResponse represents the operator snapshot.
type GetOverviewQueryResponse struct {
	Workers         int
	EligibleWorkers int
	BusyWorkers     int
	ActiveJobs      int
	PendingJobs     int
}
