package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Notice is a message delivered to a chat: text, an optional geographic
// attachment and an optional accept action for a job offer.
type Notice struct {
	// Text is the message body.
	Text string

	// Location, when set, is attached to the message as a map point.
	Location *kernel.GeoPoint

	// AcceptJob, when set, attaches an accept button for the given job.
	AcceptJob *kernel.JobID
}

// Notifier defines the contract for reaching couriers, customers and
// operators on the messaging platform. A send failure concerns only the
// recipient it happened for; state transitions never wait on or roll back
// because of one.
type Notifier interface {
	// Notify delivers a notice to the chat with the given id.
	Notify(ctx context.Context, recipient int64, notice Notice) error
}
