package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a buyer placing an order for a listed product.
// Product and payment info are the snapshots to freeze into the order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	buyerID      kernel.UserID
	sellerID     kernel.UserID
	product      order.Product
	paymentInfo  order.PaymentInfo
	deliveryFee  int64
	deliveryType order.DeliveryType

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID, sellerID kernel.UserID,
	product order.Product,
	paymentInfo order.PaymentInfo,
	deliveryFee int64,
	deliveryType order.DeliveryType,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:      orderID,
		buyerID:      buyerID,
		sellerID:     sellerID,
		product:      product,
		paymentInfo:  paymentInfo,
		deliveryFee:  deliveryFee,
		deliveryType: deliveryType,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID             { return c.orderID }
func (c CreateOrderCommand) BuyerID() kernel.UserID           { return c.buyerID }
func (c CreateOrderCommand) SellerID() kernel.UserID          { return c.sellerID }
func (c CreateOrderCommand) Product() order.Product           { return c.product }
func (c CreateOrderCommand) PaymentInfo() order.PaymentInfo   { return c.paymentInfo }
func (c CreateOrderCommand) DeliveryFee() int64               { return c.deliveryFee }
func (c CreateOrderCommand) DeliveryType() order.DeliveryType { return c.deliveryType }
