package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand is a buyer or seller flagging a problem with an order.
type OpenDisputeCommand struct {
	orderID  kernel.UUID
	callerID kernel.UserID
	reason   string

	guard guard.ConstructorGuard
}

func NewOpenDisputeCommand(orderID kernel.UUID, callerID kernel.UserID, reason string) (OpenDisputeCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return OpenDisputeCommand{}, err
	}

	return OpenDisputeCommand{
		orderID:  orderID,
		callerID: callerID,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

func (c OpenDisputeCommand) OrderID() kernel.UUID    { return c.orderID }
func (c OpenDisputeCommand) CallerID() kernel.UserID { return c.callerID }
func (c OpenDisputeCommand) Reason() string          { return c.reason }
