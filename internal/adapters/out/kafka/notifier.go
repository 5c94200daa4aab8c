// Package kafka publishes user notifications to a Kafka topic. Consumers
// (push gateway, in-app inbox) subscribe to the topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	EnvelopeVersion = 1
	Producer        = "marketplace-orders"
)

// Envelope is the message value. EventID is the notification id, so
// consumers can de-duplicate redeliveries.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"`
	UserID        string          `json:"user_id"`
	Payload       json.RawMessage `json:"payload"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier implements ports.Notifier. Messages are keyed by user id so each
// user's notifications stay ordered within a partition.
type Notifier struct {
	writer  messageWriter
	timeout time.Duration
}

func NewNotifier(brokers []string, topic string) *Notifier {
	return newNotifier(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		// Notifications are written one at a time by the dispatcher worker.
		BatchTimeout: 10 * time.Millisecond,
	})
}

func newNotifier(w messageWriter) *Notifier {
	return &Notifier{writer: w, timeout: 10 * time.Second}
}

func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) error {
	payload := notification.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	value, err := json.Marshal(Envelope{
		EventID:       notification.ID,
		EventType:     notification.Type,
		EventVersion:  EnvelopeVersion,
		OccurredAt:    notification.OccurredAt,
		Producer:      Producer,
		CorrelationID: notification.OrderID.String(),
		UserID:        notification.UserID.String(),
		Payload:       rawPayload,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.UserID.String()),
		Value: value,
		Time:  notification.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(notification.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish notification %s: %w", notification.ID, err)
	}

	return nil
}

func (n *Notifier) Close() error {
	return n.writer.Close()
}
