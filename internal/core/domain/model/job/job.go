package job

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created through
	// the NewJob factory method. This ensures all jobs are properly validated.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrAlreadyClaimed is returned when a courier tries to claim a job that
	// has already been assigned to another courier. The first successful claim
	// wins; every later claim observes this error.
	ErrAlreadyClaimed = errors.New("job is already claimed by another worker")

	// ErrNotAssignedWorker is returned when a courier who is not the job's
	// assignee tries to advance its lifecycle.
	ErrNotAssignedWorker = errors.New("worker is not assigned to this job")
)

// Job represents a delivery job in the system. It is the aggregate root that
// manages the job lifecycle from submission through claiming to completion.
//
// Job follows these invariants:
//   - Must have a valid caller-supplied identifier
//   - Must have non-empty notice text to broadcast to couriers
//   - The assignee is unset only while Broadcasting; once set it never changes
//   - Stage transitions follow the strictly linear lifecycle
//   - Can only be created through NewJob constructor
//
// The Job struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Job struct {
	// id is the caller-supplied identifier of the job
	id kernel.JobID

	// workerID is the assigned courier's ID (nil while Broadcasting)
	workerID *kernel.WorkerID

	// stage is the current state in the job lifecycle
	stage Stage

	// noticeText is the formatted offer text broadcast to couriers
	noticeText string

	// location is the delivery destination (nil when the order carries none)
	location *kernel.GeoPoint

	// customerPhone is the phone the order was placed with (nil when absent)
	customerPhone *kernel.Phone

	// customerRef is the resolved customer chat id (nil when unresolvable)
	customerRef *int64

	// deliveryFee is the courier's fee for this job, in minor currency units
	deliveryFee int64

	// dishSubtotal is the dishes total used for loyalty accrual, in minor currency units
	dishSubtotal int64

	// createdAt is when the job was submitted
	createdAt time.Time

	// isConstructed ensures the job was created via NewJob
	isConstructed bool
}

// NewJob creates a new Job instance with validation. This is the only way to
// create a valid Job, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Caller-supplied identifier (must be valid)
//   - noticeText: Offer text to broadcast (must be non-empty)
//   - deliveryFee: Courier fee in minor currency units (must not be negative)
//   - dishSubtotal: Dishes total in minor currency units (must not be negative)
//   - customerPhone: Customer phone, nil when the order carries none
//   - customerRef: Resolved customer chat id, nil when unresolvable
//   - location: Delivery destination, nil when the order carries none
//
// The constructor validates all inputs and ensures the job is created in the
// Broadcasting stage with no courier assigned.
func NewJob(
	id kernel.JobID,
	noticeText string,
	deliveryFee int64,
	dishSubtotal int64,
	customerPhone *kernel.Phone,
	customerRef *int64,
	location *kernel.GeoPoint,
) (*Job, error) {
	j := &Job{
		stage:         Broadcasting,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setNoticeText(noticeText),
		j.setDeliveryFee(deliveryFee),
		j.setDishSubtotal(dishSubtotal),
		j.setCustomerPhone(customerPhone),
		j.setLocation(location),
	); err != nil {
		return nil, err
	}

	j.customerRef = customerRef
	return j, nil
}

// Validate ensures the Job instance was properly constructed through NewJob.
// This prevents bypassing validation by directly instantiating the struct.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their identifiers.
// Jobs are considered equal if they have the same ID.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id == other.id
}

// ID returns the job's identifier.
func (j *Job) ID() kernel.JobID {
	return j.id
}

// Stage returns the current stage of the job.
func (j *Job) Stage() Stage {
	return j.stage
}

// Worker returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (j *Job) Worker() *kernel.WorkerID {
	if j.workerID == nil {
		return nil
	}
	id := *j.workerID
	return &id
}

// NoticeText returns the offer text broadcast to couriers.
func (j *Job) NoticeText() string {
	return j.noticeText
}

// Location returns the delivery destination, or nil when the order carries none.
func (j *Job) Location() *kernel.GeoPoint {
	if j.location == nil {
		return nil
	}
	point := *j.location
	return &point
}

// CustomerPhone returns the customer's phone, or nil when the order carries none.
func (j *Job) CustomerPhone() *kernel.Phone {
	if j.customerPhone == nil {
		return nil
	}
	phone := *j.customerPhone
	return &phone
}

// CustomerRef returns the resolved customer chat id, or nil when unresolvable.
func (j *Job) CustomerRef() *int64 {
	if j.customerRef == nil {
		return nil
	}
	ref := *j.customerRef
	return &ref
}

// DeliveryFee returns the courier's fee in minor currency units.
func (j *Job) DeliveryFee() int64 {
	return j.deliveryFee
}

// DishSubtotal returns the dishes total in minor currency units.
func (j *Job) DishSubtotal() int64 {
	return j.dishSubtotal
}

// CreatedAt returns when the job was submitted.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// IsPending reports whether the job is still waiting for a courier,
// i.e. it is Broadcasting and has no assignee.
func (j *Job) IsPending() bool {
	return j.stage == Broadcasting && j.workerID == nil
}

// IsCompleted reports whether the job reached the final lifecycle stage.
func (j *Job) IsCompleted() bool {
	return j.stage == Completed
}

// Claim assigns the job to a courier and advances the stage to Claimed.
//
// This method enforces the following business rules:
//   - The courier ID must be valid
//   - A repeated claim by the current assignee succeeds and changes nothing
//   - A claim while another courier is assigned fails with ErrAlreadyClaimed
//   - Otherwise the job must still be Broadcasting
//
// After a successful claim the assignee never changes for the lifetime of the job.
func (j *Job) Claim(workerID kernel.WorkerID) error {
	if workerID.IsZero() {
		return errs.NewValueIsRequiredError("workerID")
	}

	if j.workerID != nil {
		if *j.workerID == workerID {
			return nil
		}
		return ErrAlreadyClaimed
	}

	newStage, err := j.stage.Claim()
	if err != nil {
		return err
	}

	j.stage = newStage
	j.workerID = &workerID
	return nil
}

// Advance moves the job to the target stage on behalf of a courier.
//
// This method enforces the following business rules:
//   - Only the assigned courier may advance the job; anyone else gets
//     ErrNotAssignedWorker and the state does not change
//   - The target must be the immediate successor of the current stage
//
// Returns:
//   - nil on successful advancement
//   - ErrNotAssignedWorker if workerID is not the assignee
//   - error wrapping ErrInvalidStageTransition if the target is out of order
func (j *Job) Advance(workerID kernel.WorkerID, target Stage) error {
	if j.workerID == nil || *j.workerID != workerID {
		return ErrNotAssignedWorker
	}

	newStage, err := j.stage.Advance(target)
	if err != nil {
		return err
	}

	j.stage = newStage
	return nil
}

// Clone returns a deep copy of the job. Stores hand out clones so callers
// can never mutate shared state outside a store transaction.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}

	clone := *j
	clone.workerID = j.Worker()
	clone.location = j.Location()
	clone.customerPhone = j.CustomerPhone()
	clone.customerRef = j.CustomerRef()
	return &clone
}

// setID validates and sets the job's identifier.
// This is a private method used only during construction.
func (j *Job) setID(id kernel.JobID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("id")
	}
	j.id = id
	return nil
}

// setNoticeText validates and sets the offer text.
// This is a private method used only during construction.
func (j *Job) setNoticeText(noticeText string) error {
	if noticeText == "" {
		return errs.NewValueIsRequiredError("noticeText")
	}
	j.noticeText = noticeText
	return nil
}

// setDeliveryFee validates and sets the courier fee.
// This is a private method used only during construction.
func (j *Job) setDeliveryFee(deliveryFee int64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", deliveryFee))
	}
	j.deliveryFee = deliveryFee
	return nil
}

// setDishSubtotal validates and sets the dishes total.
// This is a private method used only during construction.
func (j *Job) setDishSubtotal(dishSubtotal int64) error {
	if dishSubtotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("dishSubtotal",
			fmt.Errorf("%d is negative", dishSubtotal))
	}
	j.dishSubtotal = dishSubtotal
	return nil
}

// setCustomerPhone validates and sets the customer phone when present.
// This is a private method used only during construction.
func (j *Job) setCustomerPhone(customerPhone *kernel.Phone) error {
	if customerPhone == nil {
		return nil
	}
	if err := customerPhone.Validate(); err != nil {
		return err
	}
	j.customerPhone = customerPhone
	return nil
}

// setLocation validates and sets the delivery destination when present.
// This is a private method used only during construction.
func (j *Job) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	j.location = location
	return nil
}
