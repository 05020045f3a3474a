package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through the NewRecord or RestoreRecord factory methods.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructors")

// Record is an immutable entry in the delivery history. One record is
// appended per completed job and never updated afterwards; daily courier
// reports are aggregated from these entries.
type Record struct {
	// id is the record's own identifier, assigned at creation
	id uuid.UUID

	// jobID is the completed job
	jobID kernel.JobID

	// workerID is the courier who delivered it
	workerID kernel.WorkerID

	// deliveryFee is the courier's fee for the job, in minor currency units
	deliveryFee int64

	// completedAt is when the job reached its final stage
	completedAt time.Time

	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewRecord creates a history entry for a just-completed job.
// A fresh record identifier is generated.
func NewRecord(jobID kernel.JobID, workerID kernel.WorkerID, deliveryFee int64, completedAt time.Time) (*Record, error) {
	return RestoreRecord(uuid.New(), jobID, workerID, deliveryFee, completedAt)
}

// RestoreRecord reconstructs a history entry from persistent storage.
func RestoreRecord(
	id uuid.UUID,
	jobID kernel.JobID,
	workerID kernel.WorkerID,
	deliveryFee int64,
	completedAt time.Time,
) (*Record, error) {
	record := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setJobID(jobID),
		record.setWorkerID(workerID),
		record.setDeliveryFee(deliveryFee),
		record.setCompletedAt(completedAt),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's identifier.
func (r *Record) ID() uuid.UUID {
	return r.id
}

// JobID returns the completed job's identifier.
func (r *Record) JobID() kernel.JobID {
	return r.jobID
}

// WorkerID returns the delivering courier's identifier.
func (r *Record) WorkerID() kernel.WorkerID {
	return r.workerID
}

// DeliveryFee returns the courier's fee in minor currency units.
func (r *Record) DeliveryFee() int64 {
	return r.deliveryFee
}

// CompletedAt returns when the job was completed.
func (r *Record) CompletedAt() time.Time {
	return r.completedAt
}

// setID validates and sets the record's identifier.
// This is a private method used only during construction.
func (r *Record) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("id")
	}
	r.id = id
	return nil
}

// setJobID validates and sets the completed job's identifier.
// This is a private method used only during construction.
func (r *Record) setJobID(jobID kernel.JobID) error {
	if jobID.IsZero() {
		return errs.NewValueIsRequiredError("jobID")
	}
	r.jobID = jobID
	return nil
}

// setWorkerID validates and sets the courier's identifier.
// This is a private method used only during construction.
func (r *Record) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}
	r.workerID = workerID
	return nil
}

// setDeliveryFee validates and sets the fee.
// This is a private method used only during construction.
func (r *Record) setDeliveryFee(deliveryFee int64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	r.deliveryFee = deliveryFee
	return nil
}

// setCompletedAt validates and sets the completion timestamp.
// This is a private method used only during construction.
func (r *Record) setCompletedAt(completedAt time.Time) error {
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}
	r.completedAt = completedAt
	return nil
}
