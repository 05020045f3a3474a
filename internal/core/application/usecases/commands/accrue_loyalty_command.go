package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAccrueLoyaltyCommandIsNotConstructed = errors.New(
	"AccrueLoyaltyCommand must be created via NewAccrueLoyaltyCommand constructor",
)

// AccrueLoyaltyCommand represents the cashback credit earned by a customer
// on a completed delivery.
type AccrueLoyaltyCommand struct { //nolint:recvcheck //using for validation
	phone        kernel.Phone
	dishSubtotal int64
	notifyChat   *int64

	guard guard.ConstructorGuard
}

// NewAccrueLoyaltyCommand creates a command to credit cashback.
// The subtotal must be positive; notifyChat is optional.
func NewAccrueLoyaltyCommand(phone kernel.Phone, dishSubtotal int64, notifyChat *int64) (AccrueLoyaltyCommand, error) {
	cmd := AccrueLoyaltyCommand{
		notifyChat: notifyChat,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setDishSubtotal(dishSubtotal),
	); err != nil {
		return AccrueLoyaltyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AccrueLoyaltyCommand) Validate() error {
	return c.guard.Validate(ErrAccrueLoyaltyCommandIsNotConstructed)
}

// Phone returns the customer's phone, the loyalty account key.
func (c AccrueLoyaltyCommand) Phone() kernel.Phone {
	return c.phone
}

// DishSubtotal returns the dishes total the credit is computed from.
func (c AccrueLoyaltyCommand) DishSubtotal() int64 {
	return c.dishSubtotal
}

// NotifyChat returns the chat to tell about the credit, or nil.
func (c AccrueLoyaltyCommand) NotifyChat() *int64 {
	return c.notifyChat
}

func (c *AccrueLoyaltyCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *AccrueLoyaltyCommand) setDishSubtotal(dishSubtotal int64) error {
	if dishSubtotal <= 0 {
		return errs.NewValueIsInvalidError("dishSubtotal")
	}

	c.dishSubtotal = dishSubtotal
	return nil
}
