package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterWorkerCommandIsNotConstructed = errors.New(
	"RegisterWorkerCommand must be created via NewRegisterWorkerCommand constructor",
)

// RegisterWorkerCommand represents a request to add a courier to the roster.
type RegisterWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.WorkerID
	name     string

	guard guard.ConstructorGuard
}

// NewRegisterWorkerCommand creates a command to register a courier.
func NewRegisterWorkerCommand(workerID kernel.WorkerID, name string) (RegisterWorkerCommand, error) {
	cmd := RegisterWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setName(name),
	); err != nil {
		return RegisterWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
}

// WorkerID returns the courier's chat identifier.
func (c RegisterWorkerCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

// Name returns the courier's human-readable name.
func (c RegisterWorkerCommand) Name() string {
	return c.name
}

func (c *RegisterWorkerCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}

func (c *RegisterWorkerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
