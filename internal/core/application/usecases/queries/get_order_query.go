package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order on behalf of a caller. Only the buyer and
// the seller may see it; anyone else gets a not found error.
type GetOrderQuery struct {
	orderID  kernel.UUID
	callerID kernel.UserID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, callerID kernel.UserID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:  orderID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID    { return q.orderID }
func (q GetOrderQuery) CallerID() kernel.UserID { return q.callerID }
