// Package historyrepo provides data transfer objects and mapping functions
// for completed delivery persistence. Records are append-only; the table is
// also the source for courier earnings reports.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
)

// RecordDTO represents the database structure for a completed delivery.
type RecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID       int64     `gorm:"index"`
	WorkerID    int64     `gorm:"index"`
	DeliveryFee int64
	CompletedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for delivery records.
func (RecordDTO) TableName() string {
	return "delivery_records"
}

// fromDomain converts a history record to its database representation.
func fromDomain(record *history.Record) RecordDTO {
	return RecordDTO{
		ID:          record.ID(),
		JobID:       record.JobID().Int64(),
		WorkerID:    record.WorkerID().Int64(),
		DeliveryFee: record.DeliveryFee(),
		CompletedAt: record.CompletedAt(),
	}
}

// toDomain converts a database DTO to a history record.
func toDomain(dto RecordDTO) (*history.Record, error) {
	jobID, err := kernel.NewJobID(dto.JobID)
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.NewWorkerID(dto.WorkerID)
	if err != nil {
		return nil, err
	}

	return history.RestoreRecord(dto.ID, jobID, workerID, dto.DeliveryFee, dto.CompletedAt)
}
