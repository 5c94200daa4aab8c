// Package commands contains business operations that modify system state.
// Every order transition goes through a command handler that loads the
// aggregate, applies one transition and writes it back with a conditional
// update inside a single unit of work.
package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to review and rating repositories within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
		RatingRepository() ports.RatingRepository
	}

	// EventCollector drains the events of aggregates written in a transaction.
	EventCollector interface {
		CollectEvents() []order.Event
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventCollector
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW spans the review, the rating summary and the order review flag.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)

// EventDispatcher forwards committed order events to the notification
// channel. It never fails the command: delivery problems are its own concern.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []order.Event)
}
