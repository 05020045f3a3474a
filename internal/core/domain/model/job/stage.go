package job

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidStageTransition is returned when a stage transition is requested
// that the lifecycle does not allow. The lifecycle is strictly linear, so the
// only valid advancement from any stage is to its immediate successor.
var ErrInvalidStageTransition = errors.New("invalid stage transition")

// Stage represents the lifecycle state of a dispatch job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct delivery workflow.
//
// State transitions:
//
//	Broadcasting ──> Claimed ──> PickedUp ──> EnRoute ──> Arrived ──> Completed
//
// The chain is strictly linear: no stage may be skipped and no stage may
// be revisited. Stage is a value object that validates state transitions
// and provides string representations for persistence and display.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Broadcasting is the initial stage when a job is first submitted.
	// The job is being offered to all eligible couriers and has no assignee.
	Broadcasting

	// Claimed indicates a courier has accepted the job and is heading to pickup.
	Claimed

	// PickedUp indicates the courier has collected the order.
	PickedUp

	// EnRoute indicates the courier is on the way to the customer.
	EnRoute

	// Arrived indicates the courier is at the delivery address.
	Arrived

	// Completed indicates the job has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStageStrings returns a map of Stage values to their string representations.
// All stages are included for string conversion.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:      "Unknown",
		Broadcasting: "Broadcasting",
		Claimed:      "Claimed",
		PickedUp:     "PickedUp",
		EnRoute:      "EnRoute",
		Arrived:      "Arrived",
		Completed:    "Completed",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
// Only valid stages are included to support validation.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Broadcasting: "Broadcasting",
		Claimed:      "Claimed",
		PickedUp:     "PickedUp",
		EnRoute:      "EnRoute",
		Arrived:      "Arrived",
		Completed:    "Completed",
	}
}

// StageFromString parses a stage name as produced by String.
// Parsing is exact and case-sensitive. Unknown is not parseable.
//
// Returns:
//   - Stage: The parsed stage on success
//   - error: Validation error if the name does not match any valid stage
func StageFromString(name string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == name {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a valid stage", name))
}

// Validate checks if the Stage value is valid.
//
// Valid stages are: Broadcasting, Claimed, PickedUp, EnRoute, Arrived, Completed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the stage is valid
//   - error with details if the stage is invalid
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// This method implements the fmt.Stringer interface and is safe
// to call on any Stage value, including invalid ones.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// next returns the immediate successor stage in the linear lifecycle,
// or Unknown for stages that have no successor.
func (s Stage) next() Stage {
	switch s {
	case Broadcasting:
		return Claimed
	case Claimed:
		return PickedUp
	case PickedUp:
		return EnRoute
	case EnRoute:
		return Arrived
	case Arrived:
		return Completed
	default:
		return Unknown
	}
}

// Claim transitions the stage to Claimed.
//
// Valid transitions:
//   - Broadcasting -> Claimed (a courier accepted the offer)
//
// Returns:
//   - (Claimed, nil) on valid transition
//   - (0, error) wrapping ErrInvalidStageTransition otherwise
//
// This method is used by Job.Claim() to enforce state transitions.
func (s Stage) Claim() (Stage, error) {
	if s != Broadcasting {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStageTransition, s, Claimed)
	}

	return Claimed, nil
}

// Advance transitions the stage to the given target.
//
// The target must be the immediate successor of the current stage:
//
//	Claimed -> PickedUp -> EnRoute -> Arrived -> Completed
//
// Advancing out of order, skipping a stage, or advancing past Completed
// is rejected. Broadcasting is not advanceable; it is left only via Claim.
//
// Returns:
//   - (target, nil) on valid transition
//   - (0, error) wrapping ErrInvalidStageTransition otherwise
//
// This method is used by Job.Advance() to enforce state transitions.
func (s Stage) Advance(target Stage) (Stage, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s == Broadcasting || s.next() != target {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStageTransition, s, target)
	}

	return target, nil
}
