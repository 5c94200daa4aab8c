package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand is the seller acknowledging the mobile money transfer.
type ConfirmReceiptCommand struct {
	orderID  kernel.UUID
	callerID kernel.UserID

	guard guard.ConstructorGuard
}

func NewConfirmReceiptCommand(orderID kernel.UUID, callerID kernel.UserID) (ConfirmReceiptCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return ConfirmReceiptCommand{
		orderID:  orderID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

func (c ConfirmReceiptCommand) OrderID() kernel.UUID    { return c.orderID }
func (c ConfirmReceiptCommand) CallerID() kernel.UserID { return c.callerID }
