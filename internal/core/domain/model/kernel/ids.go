package kernel

import (
	"dispatch/internal/pkg/errs"
)

// JobID identifies a dispatch job. Job identifiers are assigned by the
// intake system that submits jobs, so the domain treats them as opaque
// positive integers rather than generating its own.
type JobID int64

// NewJobID validates an externally assigned job identifier.
// Returns an error if the identifier is not positive.
func NewJobID(value int64) (JobID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidError("jobID")
	}
	return JobID(value), nil
}

// Int64 returns the identifier as a plain int64.
func (id JobID) Int64() int64 {
	return int64(id)
}

// IsZero reports whether the identifier is unset.
func (id JobID) IsZero() bool {
	return id == 0
}

// WorkerID identifies a courier. Worker identifiers are the chat
// identifiers of the messaging platform the couriers are reached on,
// so the domain treats them as opaque positive integers.
type WorkerID int64

// NewWorkerID validates an externally assigned worker identifier.
// Returns an error if the identifier is not positive.
func NewWorkerID(value int64) (WorkerID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidError("workerID")
	}
	return WorkerID(value), nil
}

// Int64 returns the identifier as a plain int64.
func (id WorkerID) Int64() int64 {
	return int64(id)
}

// IsZero reports whether the identifier is unset.
func (id WorkerID) IsZero() bool {
	return id == 0
}
