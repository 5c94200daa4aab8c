package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// Notification is a single message for one user. ID is deterministic for a
// given (order event, recipient) so deliveries can be de-duplicated.
type Notification struct {
	ID         string
	UserID     kernel.UserID
	Type       string
	OrderID    kernel.UUID
	Payload    map[string]any
	OccurredAt time.Time
}

// Notifier hands notifications to the delivery channel. Callers treat it as
// fire-and-forget: an error is logged, never propagated to the user action.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
