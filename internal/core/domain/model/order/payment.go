package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// PaymentMethod is a mobile money operator.
type PaymentMethod string

const (
	PaymentMethodWave   PaymentMethod = "wave"
	PaymentMethodOrange PaymentMethod = "orange"
	PaymentMethodMTN    PaymentMethod = "mtn"
	PaymentMethodMoov   PaymentMethod = "moov"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodWave, PaymentMethodOrange, PaymentMethodMTN, PaymentMethodMoov:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(m)))
	}
}

// PaymentInfo is the seller payout channel the buyer sends money to.
type PaymentInfo struct {
	method     PaymentMethod
	phone      string
	holderName string
}

func NewPaymentInfo(method PaymentMethod, phone, holderName string) (PaymentInfo, error) {
	p := PaymentInfo{
		method:     PaymentMethod(strings.ToLower(strings.TrimSpace(string(method)))),
		phone:      strings.TrimSpace(phone),
		holderName: strings.TrimSpace(holderName),
	}

	err := p.method.Validate()
	if p.phone == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("payment phone"))
	}
	if p.holderName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("payment holder name"))
	}
	if err != nil {
		return PaymentInfo{}, err
	}

	return p, nil
}

func (p PaymentInfo) Method() PaymentMethod { return p.method }
func (p PaymentInfo) Phone() string         { return p.phone }
func (p PaymentInfo) HolderName() string    { return p.holderName }
