package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrClaimJobCommandIsNotConstructed = errors.New(
	"ClaimJobCommand must be created via NewClaimJobCommand constructor",
)

// ClaimJobCommand represents a courier's attempt to take a broadcast job.
// Both human accepts and the deadline scheduler's automatic assignments are
// expressed as claims; forced marks the latter.
type ClaimJobCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.JobID
	workerID kernel.WorkerID
	forced   bool

	guard guard.ConstructorGuard
}

// NewClaimJobCommand creates a command for a courier's own claim.
func NewClaimJobCommand(jobID kernel.JobID, workerID kernel.WorkerID) (ClaimJobCommand, error) {
	return newClaimJobCommand(jobID, workerID, false)
}

// NewForcedClaimJobCommand creates a command for a deadline assignment made
// on the courier's behalf.
func NewForcedClaimJobCommand(jobID kernel.JobID, workerID kernel.WorkerID) (ClaimJobCommand, error) {
	return newClaimJobCommand(jobID, workerID, true)
}

func newClaimJobCommand(jobID kernel.JobID, workerID kernel.WorkerID, forced bool) (ClaimJobCommand, error) {
	cmd := ClaimJobCommand{
		forced: forced,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setWorkerID(workerID),
	); err != nil {
		return ClaimJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

// JobID returns the job being claimed.
func (c ClaimJobCommand) JobID() kernel.JobID {
	return c.jobID
}

// WorkerID returns the claiming courier.
func (c ClaimJobCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

// Forced reports whether the claim was made by the deadline scheduler
// rather than by the courier.
func (c ClaimJobCommand) Forced() bool {
	return c.forced
}

func (c *ClaimJobCommand) setJobID(jobID kernel.JobID) error {
	if jobID.IsZero() {
		return errs.NewValueIsRequiredError("jobID")
	}

	c.jobID = jobID
	return nil
}

func (c *ClaimJobCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}
