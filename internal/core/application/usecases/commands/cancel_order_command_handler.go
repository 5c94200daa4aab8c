package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// CancelOrderCommandHandler moves an initiated order to cancelled.
type CancelOrderCommandHandler struct {
	transition orderTransition
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, clock: clk, dispatcher: dispatcher},
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Cancel(cmd.CallerID(), now)
	})
}
