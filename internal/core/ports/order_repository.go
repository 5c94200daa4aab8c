package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate at version 1.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the aggregate only if the stored version still equals
	// aggregate.Version(), and bumps the version. A lost race returns an
	// error matching errs.ErrConcurrentModification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOverdue returns up to limit orders in proof_sent or confirmed whose
	// auto-dispute deadline is at or before now, oldest deadline first.
	GetOverdue(ctx context.Context, now time.Time, limit int) ([]*order.Order, error)

	// GetDueForReminder returns up to limit proof_sent orders without a
	// reminder whose proof was sent at or before proofSentBefore.
	GetDueForReminder(ctx context.Context, proofSentBefore time.Time, limit int) ([]*order.Order, error)
}
