package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWorkerStatsQueryHandler aggregates the delivery history per courier.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetWorkerStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerStatsQueryHandler creates a handler for courier stats queries.
func NewGetWorkerStatsQueryHandler(db *gorm.DB) GetWorkerStatsQueryHandler {
	return GetWorkerStatsQueryHandler{db: db}
}

// Handle executes the aggregation. Couriers with no deliveries in the window
// do not appear in the result. Results are ordered by total fees, top earner
// first.
func (h GetWorkerStatsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerStatsQuery,
) ([]GetWorkerStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetWorkerStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			worker_id,
			COUNT(*)          AS deliveries,
			SUM(delivery_fee) AS total_fees
		FROM delivery_records
		WHERE completed_at >= ? AND completed_at < ?
		GROUP BY worker_id
		ORDER BY total_fees DESC, worker_id
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetWorkerStatsQueryResponse
		if err = rows.Scan(&row.WorkerID, &row.Deliveries, &row.TotalFees); err != nil {
			return nil, err
		}
		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
