package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetWorkerContactCommandIsNotConstructed = errors.New(
	"SetWorkerContactCommand must be created via NewSetWorkerContactCommand constructor",
)

// SetWorkerContactCommand represents a courier sharing the phone or
// username customers will see.
type SetWorkerContactCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.WorkerID
	handle   string

	guard guard.ConstructorGuard
}

// NewSetWorkerContactCommand creates a command to set a courier's contact handle.
func NewSetWorkerContactCommand(workerID kernel.WorkerID, handle string) (SetWorkerContactCommand, error) {
	cmd := SetWorkerContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setHandle(handle),
	); err != nil {
		return SetWorkerContactCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetWorkerContactCommand) Validate() error {
	return c.guard.Validate(ErrSetWorkerContactCommandIsNotConstructed)
}

// WorkerID returns the courier being updated.
func (c SetWorkerContactCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

// ContactHandle returns the new contact handle.
func (c SetWorkerContactCommand) ContactHandle() string {
	return c.handle
}

func (c *SetWorkerContactCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}

func (c *SetWorkerContactCommand) setHandle(handle string) error {
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}

	c.handle = handle
	return nil
}
