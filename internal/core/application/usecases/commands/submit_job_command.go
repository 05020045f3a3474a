package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSubmitJobCommandIsNotConstructed = errors.New(
	"SubmitJobCommand must be created via NewSubmitJobCommand constructor",
)

// SubmitJobCommand represents a request to take a new delivery job into
// dispatch. Carries the identifier assigned by the intake system, the offer
// text to broadcast and the order details needed later in the lifecycle.
//
// Example:
//
//	cmd, err := NewSubmitJobCommand(jobID, offerText, 15000, 120000, &phone, nil, &point)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit job: %w", err)
//	}
type SubmitJobCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.JobID
	noticeText     string
	deliveryFee    int64
	dishSubtotal   int64
	customerPhone  *kernel.Phone
	customerChatID *int64
	location       *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSubmitJobCommand creates a command to submit a delivery job.
// The job ID must be valid and the notice text non-empty; phone, customer
// chat id and location are optional.
func NewSubmitJobCommand(
	jobID kernel.JobID,
	noticeText string,
	deliveryFee int64,
	dishSubtotal int64,
	customerPhone *kernel.Phone,
	customerChatID *int64,
	location *kernel.GeoPoint,
) (SubmitJobCommand, error) {
	cmd := SubmitJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setNoticeText(noticeText),
		cmd.setFees(deliveryFee, dishSubtotal),
		cmd.setCustomerPhone(customerPhone),
		cmd.setLocation(location),
	); err != nil {
		return SubmitJobCommand{}, err
	}

	cmd.customerChatID = customerChatID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitJobCommand) Validate() error {
	return c.guard.Validate(ErrSubmitJobCommandIsNotConstructed)
}

// JobID returns the identifier assigned by the intake system.
func (c SubmitJobCommand) JobID() kernel.JobID {
	return c.jobID
}

// NoticeText returns the offer text to broadcast to couriers.
func (c SubmitJobCommand) NoticeText() string {
	return c.noticeText
}

// DeliveryFee returns the courier fee in minor currency units.
func (c SubmitJobCommand) DeliveryFee() int64 {
	return c.deliveryFee
}

// DishSubtotal returns the dishes total in minor currency units.
func (c SubmitJobCommand) DishSubtotal() int64 {
	return c.dishSubtotal
}

// CustomerPhone returns the customer's phone, or nil when absent.
func (c SubmitJobCommand) CustomerPhone() *kernel.Phone {
	return c.customerPhone
}

// CustomerChatID returns the chat id the order was placed from, or nil
// when the intake payload did not carry one.
func (c SubmitJobCommand) CustomerChatID() *int64 {
	return c.customerChatID
}

// Location returns the delivery destination, or nil when absent.
func (c SubmitJobCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *SubmitJobCommand) setJobID(jobID kernel.JobID) error {
	if jobID.IsZero() {
		return errs.NewValueIsRequiredError("jobID")
	}

	c.jobID = jobID
	return nil
}

func (c *SubmitJobCommand) setNoticeText(noticeText string) error {
	if noticeText == "" {
		return errs.NewValueIsRequiredError("noticeText")
	}

	c.noticeText = noticeText
	return nil
}

func (c *SubmitJobCommand) setFees(deliveryFee, dishSubtotal int64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	if dishSubtotal < 0 {
		return errs.NewValueIsInvalidError("dishSubtotal")
	}

	c.deliveryFee = deliveryFee
	c.dishSubtotal = dishSubtotal
	return nil
}

func (c *SubmitJobCommand) setCustomerPhone(customerPhone *kernel.Phone) error {
	if customerPhone == nil {
		return nil
	}
	if err := customerPhone.Validate(); err != nil {
		return err
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *SubmitJobCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
