// Package notifications turns committed order events into one notification
// per recipient.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// DefaultQueueSize bounds the notifications waiting for delivery.
const DefaultQueueSize = 1024

type delivery struct {
	ctx          context.Context
	notification ports.Notification
}

// Dispatcher implements commands.EventDispatcher on top of a ports.Notifier.
// Dispatch only enqueues; a single worker goroutine calls the notifier, so a
// slow or unreachable broker never holds up the command that produced the
// event. Failures are logged. When the queue is full the notification is
// dropped and logged.
type Dispatcher struct {
	notifier ports.Notifier
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
	inbox  chan delivery
	done   chan struct{}
}

// NewDispatcher starts the delivery worker. Close stops it.
func NewDispatcher(notifier ports.Notifier, queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	d := &Dispatcher{
		notifier: notifier,
		logger:   logger.With("component", "notification_dispatcher"),
		inbox:    make(chan delivery, queueSize),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, events []order.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	// Deliveries outlive the request that committed the events.
	ctx = context.WithoutCancel(ctx)
	for _, event := range events {
		for _, recipient := range event.Recipients {
			n := ports.Notification{
				ID:         NotificationID(event, recipient.String()),
				UserID:     recipient,
				Type:       string(event.Kind),
				OrderID:    event.OrderID,
				Payload:    event.Payload,
				OccurredAt: event.OccurredAt,
			}
			d.enqueue(ctx, n)
		}
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, n ports.Notification) {
	if d.closed {
		d.logger.WarnContext(ctx, "Notification dropped, dispatcher closed", "notification_id", n.ID)
		return
	}
	select {
	case d.inbox <- delivery{ctx: ctx, notification: n}:
	default:
		d.logger.WarnContext(ctx, "Notification dropped, queue full",
			"notification_id", n.ID,
			"type", n.Type,
		)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for item := range d.inbox {
		n := item.notification
		if err := d.notifier.Notify(item.ctx, n); err != nil {
			d.logger.WarnContext(item.ctx, "Notification not delivered",
				"notification_id", n.ID,
				"type", n.Type,
				"error", err,
			)
		}
	}
}

// Close stops accepting notifications and waits until the queued ones were
// handed to the notifier, or ctx expires.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.inbox)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain notifications: %w", ctx.Err())
	}
}

// NotificationID is stable for a given event and recipient. Each transition
// happens at most once per order, so the kind identifies the event.
func NotificationID(event order.Event, recipient string) string {
	return fmt.Sprintf("%s:%s:%s", event.OrderID.String(), event.Kind, recipient)
}
