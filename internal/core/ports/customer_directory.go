package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// CustomerDirectory defines the contract for resolving a customer's phone
// number to a chat id. Matching is on the normalized nine significant
// digits, so the country prefix never matters.
type CustomerDirectory interface {
	// Register remembers the phone a chat shared.
	// Registering the same phone again moves it to the new chat.
	Register(ctx context.Context, chatID int64, phone kernel.Phone) error

	// Resolve returns the chat id the phone belongs to.
	// Returns errs.ObjectNotFoundError if the phone is unknown.
	Resolve(ctx context.Context, phone kernel.Phone) (int64, error)
}
