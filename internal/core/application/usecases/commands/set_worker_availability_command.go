package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetWorkerAvailabilityCommandIsNotConstructed = errors.New(
	"SetWorkerAvailabilityCommand must be created via NewSetWorkerAvailabilityCommand constructor",
)

// SetWorkerAvailabilityCommand represents a courier going on or off shift.
type SetWorkerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	workerID  kernel.WorkerID
	available bool

	guard guard.ConstructorGuard
}

// NewSetWorkerAvailabilityCommand creates a command to toggle a courier's shift.
func NewSetWorkerAvailabilityCommand(workerID kernel.WorkerID, available bool) (SetWorkerAvailabilityCommand, error) {
	cmd := SetWorkerAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return SetWorkerAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetWorkerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetWorkerAvailabilityCommandIsNotConstructed)
}

// WorkerID returns the courier being toggled.
func (c SetWorkerAvailabilityCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

// Available reports whether the courier is going on shift.
func (c SetWorkerAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetWorkerAvailabilityCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}
