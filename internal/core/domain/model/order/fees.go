package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	minFeePercent = decimal.Zero
	maxFeePercent = hundred
)

// Fees is the money split of an order, in whole FCFA. The platform cut is
// computed once at creation from the percentage in force at that moment and
// never recomputed. SellerReceives + PlatformFee always equals TotalAmount.
type Fees struct {
	deliveryFee    int64
	totalAmount    int64
	platformFee    int64
	sellerReceives int64
	feePercent     decimal.Decimal
}

// NewFees computes round(total * feePercent / 100), rounding half away from zero.
func NewFees(price, deliveryFee int64, feePercent decimal.Decimal) (Fees, error) {
	if price <= 0 {
		return Fees{}, errs.NewPreconditionFailedErrorWithCause(
			"price is positive", fmt.Errorf("%d is not greater than 0", price))
	}
	if deliveryFee < 0 {
		return Fees{}, errs.NewValueIsOutOfRangeError("delivery fee", deliveryFee, 0, "unbounded")
	}
	if feePercent.LessThan(minFeePercent) || feePercent.GreaterThan(maxFeePercent) {
		return Fees{}, errs.NewValueIsOutOfRangeError("fee percent", feePercent.String(), 0, 100)
	}

	total := price + deliveryFee
	platformFee := decimal.NewFromInt(total).Mul(feePercent).Div(hundred).Round(0).IntPart()

	return Fees{
		deliveryFee:    deliveryFee,
		totalAmount:    total,
		platformFee:    platformFee,
		sellerReceives: total - platformFee,
		feePercent:     feePercent,
	}, nil
}

// RestoreFees rebuilds stored amounts without recomputing them, rejecting rows
// that break the split invariant.
func RestoreFees(deliveryFee, totalAmount, platformFee, sellerReceives int64, feePercent decimal.Decimal) (Fees, error) {
	if sellerReceives+platformFee != totalAmount {
		return Fees{}, errs.NewValueIsInvalidErrorWithCause("fees",
			fmt.Errorf("%d + %d does not equal total %d", sellerReceives, platformFee, totalAmount))
	}
	return Fees{
		deliveryFee:    deliveryFee,
		totalAmount:    totalAmount,
		platformFee:    platformFee,
		sellerReceives: sellerReceives,
		feePercent:     feePercent,
	}, nil
}

func (f Fees) DeliveryFee() int64          { return f.deliveryFee }
func (f Fees) TotalAmount() int64          { return f.totalAmount }
func (f Fees) PlatformFee() int64          { return f.platformFee }
func (f Fees) SellerReceives() int64       { return f.sellerReceives }
func (f Fees) FeePercent() decimal.Decimal { return f.feePercent }
