package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetWorkerStatsQueryIsNotConstructed = errors.New(
	"GetWorkerStatsQuery must be created via NewGetWorkerStatsQuery constructor",
)

// GetWorkerStatsQuery retrieves per-courier delivery counts and earned fees
// for a time window. Feeds the daily operator report and the stats endpoint.
type GetWorkerStatsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetWorkerStatsQuery creates a query over the half-open window [from, to).
func NewGetWorkerStatsQuery(from, to time.Time) (GetWorkerStatsQuery, error) {
	if from.IsZero() || to.IsZero() {
		return GetWorkerStatsQuery{}, errs.NewValueIsRequiredError("window bounds")
	}
	if !from.Before(to) {
		return GetWorkerStatsQuery{}, errs.NewValueIsInvalidError("window")
	}

	return GetWorkerStatsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerStatsQueryIsNotConstructed)
}

// From returns the inclusive window start.
func (q GetWorkerStatsQuery) From() time.Time {
	return q.from
}

// To returns the exclusive window end.
func (q GetWorkerStatsQuery) To() time.Time {
	return q.to
}

// GetWorkerStatsQueryResponse represents one courier's totals in the window.
type GetWorkerStatsQueryResponse struct {
	WorkerID   int64
	Deliveries int64
	TotalFees  int64
}
