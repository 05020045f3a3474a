package loyalty

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// PromoCodeLength is the exact length of a loyalty promo code.
const PromoCodeLength = 6

// CashbackPercent is the share of the dish subtotal credited to the
// customer's account on every completed delivery.
const CashbackPercent = 1

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructors")

	// ErrPromoCodeAlreadyIssued is returned when a promo code is issued to an
	// account that already has one. A promo code is generated exactly once per
	// account and never rotated.
	ErrPromoCodeAlreadyIssued = errors.New("account already has a promo code")
)

// CashbackCredit returns the loyalty credit earned for a dish subtotal,
// in minor currency units. The credit is CashbackPercent of the subtotal
// rounded down; subtotals too small to earn a whole unit yield zero.
func CashbackCredit(dishSubtotal int64) int64 {
	if dishSubtotal <= 0 {
		return 0
	}
	return dishSubtotal * CashbackPercent / 100
}

// Account represents a customer's loyalty balance. It is the aggregate root
// keyed by the customer's normalized phone number.
//
// Account follows these invariants:
//   - Must have a valid phone number
//   - The balance never goes negative (credits only)
//   - A promo code, once issued, is immutable
//   - Can only be created through NewAccount or RestoreAccount constructors
type Account struct {
	// phone is the customer's normalized phone number, the account's identity
	phone kernel.Phone

	// balance is the accumulated credit in minor currency units
	balance int64

	// promoCode is the account's unique code (empty until issued)
	promoCode string

	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewAccount creates a fresh Account for a customer with a zero balance
// and no promo code.
func NewAccount(phone kernel.Phone) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := account.setPhone(phone); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
// Unlike NewAccount, this constructor restores a previously accumulated
// balance and an already issued promo code.
//
// Parameters:
//   - phone: The customer's normalized phone number
//   - balance: The persisted balance (must not be negative)
//   - promoCode: The persisted promo code, or empty if none was issued
func RestoreAccount(phone kernel.Phone, balance int64, promoCode string) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setPhone(phone),
		account.setBalance(balance),
		account.setPromoCode(promoCode),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate ensures the Account instance was properly constructed through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their phone numbers.
func (a *Account) IsEqual(other *Account) bool {
	if other == nil {
		return false
	}
	equal, err := a.phone.IsEqual(other.phone)
	return err == nil && equal
}

// Phone returns the customer's normalized phone number.
func (a *Account) Phone() kernel.Phone {
	return a.phone
}

// Balance returns the accumulated credit in minor currency units.
func (a *Account) Balance() int64 {
	return a.balance
}

// PromoCode returns the account's promo code.
// Returns an empty string until a code has been issued.
func (a *Account) PromoCode() string {
	return a.promoCode
}

// HasPromoCode reports whether a promo code has been issued to the account.
func (a *Account) HasPromoCode() bool {
	return a.promoCode != ""
}

// IssuePromoCode assigns the account its one permanent promo code.
//
// This method enforces the following business rules:
//   - The code must be exactly PromoCodeLength characters of A-Z or 0-9
//   - An account with a code already issued yields ErrPromoCodeAlreadyIssued
//
// Uniqueness across accounts is the caller's responsibility; the store is
// consulted for collisions before a generated code reaches this method.
func (a *Account) IssuePromoCode(code string) error {
	if a.promoCode != "" {
		return ErrPromoCodeAlreadyIssued
	}
	if err := validatePromoCode(code); err != nil {
		return err
	}

	a.promoCode = code
	return nil
}

// Credit adds earned cashback to the account's balance.
// The amount must be positive.
func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	a.balance += amount
	return nil
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	return &clone
}

// setPhone validates and sets the account's phone number.
// This is a private method used only during construction.
func (a *Account) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	a.phone = phone
	return nil
}

// setBalance validates and sets the persisted balance.
// This is a private method used only during restoration.
func (a *Account) setBalance(balance int64) error {
	if balance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("balance",
			fmt.Errorf("%d is negative", balance))
	}
	a.balance = balance
	return nil
}

// setPromoCode validates and sets the persisted promo code when present.
// This is a private method used only during restoration.
func (a *Account) setPromoCode(promoCode string) error {
	if promoCode == "" {
		return nil
	}
	if err := validatePromoCode(promoCode); err != nil {
		return err
	}
	a.promoCode = promoCode
	return nil
}

// validatePromoCode checks the promo code format: exactly PromoCodeLength
// characters, each an uppercase latin letter or a digit.
func validatePromoCode(code string) error {
	if len(code) != PromoCodeLength {
		return errs.NewValueIsInvalidErrorWithCause("promoCode",
			fmt.Errorf("%q is not %d characters long", code, PromoCodeLength))
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return errs.NewValueIsInvalidErrorWithCause("promoCode",
				fmt.Errorf("%q contains a character outside A-Z and 0-9", code))
		}
	}
	return nil
}
