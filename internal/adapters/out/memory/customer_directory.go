package memory

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CustomerDirectory implements ports.CustomerDirectory over a map keyed by
// the normalized nine-digit phone. A later registration for the same phone
// overwrites the earlier chat id.
type CustomerDirectory struct {
	mu    sync.RWMutex
	chats map[string]int64
}

// NewCustomerDirectory creates an empty directory.
func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{
		chats: make(map[string]int64),
	}
}

// Register remembers which chat a phone number belongs to.
func (d *CustomerDirectory) Register(_ context.Context, chatID int64, phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	if chatID == 0 {
		return errs.NewValueIsRequiredError("chatID")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.chats[phone.Digits()] = chatID
	return nil
}

// Resolve looks up the chat registered for a phone number.
func (d *CustomerDirectory) Resolve(_ context.Context, phone kernel.Phone) (int64, error) {
	if err := phone.Validate(); err != nil {
		return 0, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	chatID, ok := d.chats[phone.Digits()]
	if !ok {
		return 0, errs.NewObjectNotFoundError("customer", phone.Digits())
	}

	return chatID, nil
}
