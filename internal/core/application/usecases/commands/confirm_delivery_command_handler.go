package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// ConfirmDeliveryCommandHandler moves an order from confirmed to delivered, which unlocks reviews.
type ConfirmDeliveryCommandHandler struct {
	transition orderTransition
}

func NewConfirmDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, clock: clk, dispatcher: dispatcher},
	}
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.ConfirmDelivery(cmd.CallerID(), now)
	})
}
