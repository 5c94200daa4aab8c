package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler places new orders in status initiated.
// feePercent is the platform rate in force; it is copied into each order so a
// later change of the rate never touches existing orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	dispatcher EventDispatcher
	feePercent decimal.Decimal
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
	feePercent decimal.Decimal,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		dispatcher: dispatcher,
		feePercent: feePercent,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		cmd.SellerID(),
		cmd.Product(),
		cmd.PaymentInfo(),
		cmd.DeliveryFee(),
		h.feePercent,
		cmd.DeliveryType(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.CollectEvents())
	return nil
}
