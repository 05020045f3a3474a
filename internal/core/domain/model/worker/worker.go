package worker

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrWorkerIsNotConstructed is returned when a Worker instance was not created
	// through the NewWorker factory method.
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")

	// ErrWorkerAlreadyAssigned is returned when a courier who is already carrying
	// a job is assigned another one.
	ErrWorkerAlreadyAssigned = errors.New("worker is already assigned to a job")

	// ErrWorkerNotAvailable is returned when an off-shift courier is assigned a job.
	ErrWorkerNotAvailable = errors.New("worker is not available")

	// ErrWorkerNotBusy is returned when a job release is attempted on a courier
	// who is not carrying one.
	ErrWorkerNotBusy = errors.New("worker is not carrying a job")

	// ErrWorkerIsBusy is returned when a courier tries to change availability
	// while carrying a job. The current job must be released first.
	ErrWorkerIsBusy = errors.New("worker is carrying a job")
)

// Worker represents a courier in the dispatch system. It is the aggregate root
// that manages the courier's availability and current assignment.
//
// Worker follows these invariants:
//   - Must have a valid identifier and a non-empty name
//   - Carries at most one job at a time; currentJob is set exactly while Busy
//   - Availability cannot be toggled while Busy
//   - Is eligible for offers only when Free with a contact handle on file
//   - Can only be created through NewWorker constructor
//
// The Worker struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Worker struct {
	// id is the courier's chat identifier on the messaging platform
	id kernel.WorkerID

	// name is the human-readable name of the courier
	name string

	// contactHandle is the phone or username shared with customers
	// (empty until the courier provides one)
	contactHandle string

	// status is the courier's availability state
	status Status

	// currentJob is the job the courier is carrying (nil unless Busy)
	currentJob *kernel.JobID

	// guard ensures the worker was properly constructed
	guard guard.ConstructorGuard
}

// NewWorker creates a new Worker instance with validation. This is the only
// way to create a valid Worker, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: The courier's chat identifier (must be valid)
//   - name: Human-readable name (must be non-empty)
//
// The constructor validates all inputs and ensures the worker starts Free
// with no contact handle and no current job. A freshly registered courier
// is therefore not yet eligible for offers until a contact handle is set.
func NewWorker(id kernel.WorkerID, name string) (*Worker, error) {
	w := &Worker{
		status: Free,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Worker instance was properly constructed through NewWorker.
// This prevents bypassing validation by directly instantiating the struct.
func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

// IsEqual compares two workers by their identifiers.
// Workers are considered equal if they have the same ID.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id == other.id
}

// ID returns the courier's chat identifier.
func (w *Worker) ID() kernel.WorkerID {
	return w.id
}

// Name returns the courier's human-readable name.
func (w *Worker) Name() string {
	return w.name
}

// ContactHandle returns the phone or username shared with customers.
// Returns an empty string when the courier has not provided one yet.
func (w *Worker) ContactHandle() string {
	return w.contactHandle
}

// Status returns the courier's availability state.
func (w *Worker) Status() Status {
	return w.status
}

// CurrentJob returns the job the courier is carrying.
// Returns nil unless the courier is Busy.
func (w *Worker) CurrentJob() *kernel.JobID {
	if w.currentJob == nil {
		return nil
	}
	id := *w.currentJob
	return &id
}

// IsEligible reports whether the courier can be offered jobs.
// A courier is eligible when Free with a contact handle on file.
func (w *Worker) IsEligible() bool {
	return w.status == Free && w.contactHandle != ""
}

// SetContactHandle updates the phone or username shared with customers.
// The handle must be non-empty. Setting a handle on a Free courier may make
// the courier eligible for pending offers.
func (w *Worker) SetContactHandle(handle string) error {
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	w.contactHandle = handle
	return nil
}

// SetAvailability puts the courier on or off shift.
//
// This method enforces the following business rules:
//   - A Busy courier cannot change availability; the current job must be
//     released first (ErrWorkerIsBusy)
//   - Going on shift sets the status to Free, off shift to Unavailable
//
// Setting the current availability again succeeds and changes nothing.
func (w *Worker) SetAvailability(available bool) error {
	if w.status == Busy {
		return ErrWorkerIsBusy
	}

	if available {
		w.status = Free
	} else {
		w.status = Unavailable
	}
	return nil
}

// Assign marks the courier as carrying the given job.
//
// This method enforces the following business rules:
//   - The job ID must be valid
//   - Re-assigning the job the courier already carries succeeds and changes
//     nothing
//   - The courier must be Free; a Busy courier yields ErrWorkerAlreadyAssigned
//     and an off-shift courier ErrWorkerNotAvailable
//
// After a successful assignment the courier is Busy and CurrentJob returns
// the job's ID.
func (w *Worker) Assign(jobID kernel.JobID) error {
	if jobID.IsZero() {
		return errs.NewValueIsRequiredError("jobID")
	}

	if w.currentJob != nil && *w.currentJob == jobID {
		return nil
	}

	newStatus, err := w.status.Assign()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.currentJob = &jobID
	return nil
}

// Release clears the courier's current assignment and marks the courier Free.
//
// Returns ErrWorkerNotBusy if the courier is not carrying a job.
func (w *Worker) Release() error {
	newStatus, err := w.status.Release()
	if err != nil {
		return err
	}

	w.status = newStatus
	w.currentJob = nil
	return nil
}

// Clone returns a deep copy of the worker. The registry hands out clones so
// callers can never mutate shared state outside a registry transaction.
func (w *Worker) Clone() *Worker {
	if w == nil {
		return nil
	}

	clone := *w
	clone.currentJob = w.CurrentJob()
	return &clone
}

// setID validates and sets the courier's identifier.
// This is a private method used only during construction.
func (w *Worker) setID(id kernel.WorkerID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("id")
	}
	w.id = id
	return nil
}

// setName validates and sets the courier's name.
// This is a private method used only during construction.
func (w *Worker) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}
