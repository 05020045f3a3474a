// Package amqp delivers notices to the chat gateway through RabbitMQ. The
// engine publishes; a separate bridge process consumes the queue and talks
// to the actual chat platform.
package amqp

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"dispatch/internal/core/ports"
)

const (
	noticesExchange = "dispatch.notices"
	noticesQueue    = "dispatch.notices.q"
	noticesKey      = "chat"
)

// Notifier implements ports.Notifier over a RabbitMQ channel.
type Notifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialNotifier connects to the broker and declares the notices topology:
// a durable direct exchange bound to a durable queue.
func DialNotifier(url string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Notifier{conn: conn, ch: ch}, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(noticesExchange, "direct", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(noticesQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(noticesQueue, noticesKey, noticesExchange, false, nil)
}

// Close releases the channel and connection.
func (n *Notifier) Close() {
	if n == nil {
		return
	}
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}

// Notify publishes one notice for the bridge to deliver to a chat.
func (n *Notifier) Notify(ctx context.Context, recipient int64, notice ports.Notice) error {
	body, err := json.Marshal(buildMessage(recipient, notice))
	if err != nil {
		return err
	}

	return n.ch.PublishWithContext(ctx, noticesExchange, noticesKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// noticeMessage is the wire format consumed by the chat bridge.
type noticeMessage struct {
	Recipient int64    `json:"recipient"`
	Text      string   `json:"text"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	AcceptJob *int64   `json:"accept_job_id,omitempty"`
}

func buildMessage(recipient int64, notice ports.Notice) noticeMessage {
	message := noticeMessage{
		Recipient: recipient,
		Text:      notice.Text,
	}

	if notice.Location != nil {
		lat := notice.Location.Latitude()
		lng := notice.Location.Longitude()
		message.Latitude = &lat
		message.Longitude = &lng
	}
	if notice.AcceptJob != nil {
		id := notice.AcceptJob.Int64()
		message.AcceptJob = &id
	}

	return message
}
