package worker

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a courier.
// It implements a state machine with defined transitions so that a courier
// carries at most one job at a time.
//
// State transitions:
//
//	Free ──> Busy ──> Free
//	Free <──> Unavailable
//
// A Busy courier cannot change availability until the current job is
// released. Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Free indicates the courier is on shift and can be offered jobs.
	Free

	// Busy indicates the courier is carrying a job and cannot take another.
	Busy

	// Unavailable indicates the courier is off shift and must not be offered jobs.
	Unavailable
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Free:        "Free",
		Busy:        "Busy",
		Unavailable: "Unavailable",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Free:        "Free",
		Busy:        "Busy",
		Unavailable: "Unavailable",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Free, Busy, Unavailable.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Busy.
//
// Valid transitions:
//   - Free -> Busy
//
// Returns:
//   - (Busy, nil) on valid transition
//   - (0, ErrWorkerAlreadyAssigned) if the courier is already Busy
//   - (0, ErrWorkerNotAvailable) if the courier is Unavailable
//   - (0, error) if the status itself is invalid
//
// This method is used by Worker.Assign() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	switch s {
	case Free:
		return Busy, nil
	case Busy:
		return 0, ErrWorkerAlreadyAssigned
	case Unavailable:
		return 0, ErrWorkerNotAvailable
	default:
		return 0, s.Validate()
	}
}

// Release transitions the status back to Free.
//
// Valid transitions:
//   - Busy -> Free
//
// Returns:
//   - (Free, nil) on valid transition
//   - (0, ErrWorkerNotBusy) if the courier is not carrying a job
//
// This method is used by Worker.Release() to enforce state transitions.
func (s Status) Release() (Status, error) {
	if s != Busy {
		return 0, ErrWorkerNotBusy
	}

	return Free, nil
}
