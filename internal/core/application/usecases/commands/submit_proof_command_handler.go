package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// SubmitProofCommandHandler moves an order from initiated to proof_sent and
// starts its 24h auto-dispute deadline.
type SubmitProofCommandHandler struct {
	transition orderTransition
}

func NewSubmitProofCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) SubmitProofCommandHandler {
	return SubmitProofCommandHandler{
		transition: orderTransition{uowFactory: uowFactory, clock: clk, dispatcher: dispatcher},
	}
}

func (h *SubmitProofCommandHandler) Handle(ctx context.Context, cmd SubmitProofCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transition.apply(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.SubmitProof(cmd.CallerID(), cmd.ScreenshotRef(), cmd.TransactionRef(), now)
	})
}
