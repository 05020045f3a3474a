package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrOfferPendingJobsCommandIsNotConstructed = errors.New(
	"OfferPendingJobsCommand must be created via NewOfferPendingJobsCommand constructor",
)

// OfferPendingJobsCommand represents a request to re-offer the jobs still
// waiting for a courier to one specific courier who just became eligible.
type OfferPendingJobsCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.WorkerID

	guard guard.ConstructorGuard
}

// NewOfferPendingJobsCommand creates a command to re-offer pending jobs.
func NewOfferPendingJobsCommand(workerID kernel.WorkerID) (OfferPendingJobsCommand, error) {
	cmd := OfferPendingJobsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return OfferPendingJobsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OfferPendingJobsCommand) Validate() error {
	return c.guard.Validate(ErrOfferPendingJobsCommandIsNotConstructed)
}

// WorkerID returns the courier to offer the pending jobs to.
func (c OfferPendingJobsCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

func (c *OfferPendingJobsCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}
