package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is either party withdrawing an order before any payment proof.
type CancelOrderCommand struct {
	orderID  kernel.UUID
	callerID kernel.UserID

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.UUID, callerID kernel.UserID) (CancelOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:  orderID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CancelOrderCommand) CallerID() kernel.UserID { return c.callerID }
