package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// ConfirmReceiptCommandHandler moves an order from proof_sent to confirmed.
type ConfirmReceiptCommandHandler struct {
	transition orderTransition
}

func NewConfirmReceiptCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, clock: clk, dispatcher: dispatcher},
	}
}

func (h *ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.ConfirmReceipt(cmd.CallerID(), now)
	})
}
