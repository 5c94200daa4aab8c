package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// DeliveryType tells how the goods change hands.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypeInPerson DeliveryType = "in_person"
)

// ParseDeliveryType defaults an empty value to DeliveryTypeDelivery.
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch DeliveryType(s) {
	case "":
		return DeliveryTypeDelivery, nil
	case DeliveryTypeDelivery, DeliveryTypeInPerson:
		return DeliveryType(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("delivery type", fmt.Errorf("%q is not supported", s))
	}
}
