package services

import (
	"errors"
	"math/rand/v2"

	"dispatch/internal/core/domain/model/worker"
)

// ErrNoEligibleWorkers is returned when a courier must be picked for an
// unclaimed job but no eligible couriers are available. The job stays
// pending and is re-offered as couriers become eligible again.
var ErrNoEligibleWorkers = errors.New("no eligible workers")

// ReassignmentPicker is a domain service that selects the courier a job is
// assigned to when its broadcast deadline expires with no one claiming it.
//
// Business rules:
//   - Every candidate must be a valid, eligible courier
//   - The pick is uniformly random across the candidates; no courier is
//     preferred over another
//
// Example usage:
//
//	picker := services.NewReassignmentPicker()
//	picked, err := picker.Pick(eligible)
//	if errors.Is(err, services.ErrNoEligibleWorkers) {
//	    // Leave the job pending
//	    return
//	}
type ReassignmentPicker struct {
	intN func(n int) int
}

// NewReassignmentPicker creates a ReassignmentPicker backed by the default
// random source.
func NewReassignmentPicker() ReassignmentPicker {
	return ReassignmentPicker{intN: rand.IntN}
}

// NewReassignmentPickerWithRand creates a ReassignmentPicker with a custom
// random index function. Used in tests to make the pick deterministic.
func NewReassignmentPickerWithRand(intN func(n int) int) ReassignmentPicker {
	return ReassignmentPicker{intN: intN}
}

// Pick selects one courier uniformly at random from the candidates.
//
// Parameters:
//   - candidates: The eligible couriers to choose between
//
// Returns:
//   - *worker.Worker: The picked courier
//   - error: ErrNoEligibleWorkers if candidates is empty, or a validation
//     error if any candidate is invalid
func (p ReassignmentPicker) Pick(candidates []*worker.Worker) (*worker.Worker, error) {
	if len(candidates) == 0 {
		return nil, ErrNoEligibleWorkers
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
	}

	return candidates[p.intN(len(candidates))], nil
}
