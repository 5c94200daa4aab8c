package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventKind names what happened to an order. The values double as
// notification types for the outbound dispatcher.
type EventKind string

const (
	EventOrderInitiated   EventKind = "order_initiated"
	EventProofSent        EventKind = "proof_sent"
	EventPaymentConfirmed EventKind = "payment_confirmed"
	EventOrderDelivered   EventKind = "order_delivered"
	EventOrderDisputed    EventKind = "order_disputed"
	EventOrderCancelled   EventKind = "order_cancelled"
	EventPaymentReminder  EventKind = "payment_reminder"
)

// Event is recorded by the aggregate on every successful transition and
// drained with PullEvents once the change is committed.
type Event struct {
	Kind       EventKind
	OrderID    kernel.UUID
	Recipients []kernel.UserID
	Payload    map[string]any
	OccurredAt time.Time
}
