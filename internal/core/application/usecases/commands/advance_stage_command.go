package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/job"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand represents a courier's report that the delivery moved
// to the next lifecycle stage.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.JobID
	workerID kernel.WorkerID
	target   job.Stage

	guard guard.ConstructorGuard
}

// NewAdvanceStageCommand creates a command to advance a job's lifecycle.
// The target must be a valid stage; whether it is reachable from the job's
// current stage is decided by the aggregate at handling time.
func NewAdvanceStageCommand(jobID kernel.JobID, workerID kernel.WorkerID, target job.Stage) (AdvanceStageCommand, error) {
	cmd := AdvanceStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setWorkerID(workerID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

// JobID returns the job being advanced.
func (c AdvanceStageCommand) JobID() kernel.JobID {
	return c.jobID
}

// WorkerID returns the reporting courier.
func (c AdvanceStageCommand) WorkerID() kernel.WorkerID {
	return c.workerID
}

// Target returns the stage the courier reports.
func (c AdvanceStageCommand) Target() job.Stage {
	return c.target
}

func (c *AdvanceStageCommand) setJobID(jobID kernel.JobID) error {
	if jobID.IsZero() {
		return errs.NewValueIsRequiredError("jobID")
	}

	c.jobID = jobID
	return nil
}

func (c *AdvanceStageCommand) setWorkerID(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	c.workerID = workerID
	return nil
}

func (c *AdvanceStageCommand) setTarget(target job.Stage) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
