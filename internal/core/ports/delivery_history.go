package ports

import (
	"context"

	"dispatch/internal/core/domain/model/history"
)

// DeliveryHistory defines the contract for the durable, append-only record
// of completed deliveries. Records are never updated or deleted; reports
// aggregate over them.
type DeliveryHistory interface {
	// Append persists a completion record.
	Append(ctx context.Context, record *history.Record) error
}
