// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-job serialization
// where racing is possible, and persistence through the ports.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Collaborator interfaces consumed by command handlers. Implementations live
// in internal/notifications, internal/jobs and in the handlers themselves;
// declaring them here keeps the handlers testable with plain mocks.
type (
	// Messenger delivers notices asynchronously. Sends are fire-and-forget:
	// they never block a state transition and never report failure to the
	// caller (failures are logged by the implementation).
	Messenger interface {
		// ToChat queues a notice for the chat with the given id.
		ToChat(chatID int64, notice ports.Notice)

		// ToOperators queues a notice for every operator chat.
		ToOperators(notice ports.Notice)
	}

	// DeadlineScheduler manages the one-shot auto-assignment timer armed for
	// each broadcast offer.
	DeadlineScheduler interface {
		// Arm starts (or restarts) the job's deadline timer.
		Arm(jobID kernel.JobID)

		// Disarm cancels the job's deadline timer if one is pending.
		Disarm(jobID kernel.JobID)
	}

	// LoyaltyAccruer credits cashback for a completed delivery.
	// When notifyChat is set, the customer is told about the credit and
	// their promo code.
	LoyaltyAccruer interface {
		Accrue(ctx context.Context, phone kernel.Phone, dishSubtotal int64, notifyChat *int64) error
	}

	// PendingOfferer re-offers the still-unclaimed jobs to a courier who
	// just became eligible.
	PendingOfferer interface {
		OfferPending(ctx context.Context, workerID kernel.WorkerID) error
	}
)
