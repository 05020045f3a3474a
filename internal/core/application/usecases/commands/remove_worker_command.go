package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveWorkerCommandIsNotConstructed = errors.New(
	"RemoveWorkerCommand must be created via NewRemoveWorkerCommand constructor",
)

// RemoveWorkerCommand represents a request to take a courier off the roster.
type RemoveWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.WorkerID

	guard guard.ConstructorGuard
}

// NewRemoveWorkerCommand creates a command to remove a courier.
func NewRemoveWorkerCommand(workerID kernel.WorkerID) (RemoveWorkerCommand, error) {
	cmd := RemoveWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return RemoveWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWorkerCommandIsNotConstructed)
}

// WorkerID returns the courier to remove.
func (c RemoveWorkerCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

func (c *RemoveWorkerCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}
