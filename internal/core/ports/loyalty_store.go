package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/loyalty"
)

// LoyaltyStore defines the persistence contract for loyalty accounts.
// Accounts are keyed by the customer's normalized phone number.
// Implementations return defensive copies; mutating a returned aggregate
// has no effect until it is written back with Update.
type LoyaltyStore interface {
	// Add persists a new account.
	// Returns an error if an account for the same phone already exists.
	Add(ctx context.Context, aggregate *loyalty.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *loyalty.Account) error

	// Get retrieves the account for a phone.
	// Returns errs.ObjectNotFoundError if no account exists yet.
	Get(ctx context.Context, phone kernel.Phone) (*loyalty.Account, error)

	// CodeInUse reports whether any account already carries the promo code.
	CodeInUse(ctx context.Context, code string) (bool, error)
}
