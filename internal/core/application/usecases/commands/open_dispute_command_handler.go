package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// OpenDisputeCommandHandler moves any non-terminal order to disputed on
// request of one of its parties.
type OpenDisputeCommandHandler struct {
	transition orderTransition
}

func NewOpenDisputeCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, clock: clk, dispatcher: dispatcher},
	}
}

func (h *OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Dispute(cmd.CallerID(), cmd.Reason(), now)
	})
}
