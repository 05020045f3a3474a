package historyrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/history"
)

// GormHistoryRepository implements ports.DeliveryHistory using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM delivery history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append saves a completed delivery record. Records are never updated or
// removed once written.
func (r *GormHistoryRepository) Append(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByWorker retrieves a courier's records in a time window, oldest first.
func (r *GormHistoryRepository) ListByWorker(
	ctx context.Context,
	workerID int64,
	from, to time.Time,
) ([]*history.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND completed_at >= ? AND completed_at < ?", workerID, from, to).
		Order("completed_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}

	return records, nil
}
