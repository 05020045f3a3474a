// Package notifications decouples command handling from notice delivery.
// Handlers fire notices and move on; a background consumer pushes them to
// the broker. A chat platform outage can never fail a dispatch operation.
package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/ports"
)

// sendTimeout bounds one delivery attempt to the broker.
const sendTimeout = 5 * time.Second

type envelope struct {
	recipient int64
	notice    ports.Notice
}

// Dispatcher implements the Messenger consumed by the command handlers.
// Notices go through a buffered queue to a single consumer goroutine.
// When the queue is full the notice is dropped and logged rather than
// blocking the caller.
type Dispatcher struct {
	sender    ports.Notifier
	operators []int64
	queue     chan envelope
	logger    *slog.Logger
	wg        sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewDispatcher creates a dispatcher over the given notifier. The operator
// chats receive everything sent through ToOperators.
func NewDispatcher(sender ports.Notifier, operators []int64, buffer int, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		operators: append([]int64(nil), operators...),
		queue:     make(chan envelope, buffer),
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// Start launches the consumer goroutine.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.consume()
	})
}

// Stop drains the queue and waits for the consumer to finish. No ToChat or
// ToOperators calls may race with Stop.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// ToChat queues a notice for one chat.
func (d *Dispatcher) ToChat(chatID int64, notice ports.Notice) {
	select {
	case d.queue <- envelope{recipient: chatID, notice: notice}:
	default:
		d.logger.Warn("notice queue full, dropping notice", "recipient", chatID)
	}
}

// ToOperators queues a notice for every operator chat.
func (d *Dispatcher) ToOperators(notice ports.Notice) {
	for _, chatID := range d.operators {
		d.ToChat(chatID, notice)
	}
}

func (d *Dispatcher) consume() {
	defer d.wg.Done()

	for item := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Notify(ctx, item.recipient, item.notice); err != nil {
			d.logger.Error("notice delivery failed",
				"recipient", item.recipient, "error", err)
		}
		cancel()
	}
}
