package review

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the direction of a review.
type Role string

const (
	RoleBuyerToSeller Role = "buyer_to_seller"
	RoleSellerToBuyer Role = "seller_to_buyer"
)

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	if r != RoleBuyerToSeller && r != RoleSellerToBuyer {
		return errs.NewValueIsInvalidErrorWithCause("review role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// CountsTowardsRating reports whether reviews in this direction feed the
// ratee's public rating. Only buyers rate sellers publicly.
func (r Role) CountsTowardsRating() bool {
	return r == RoleBuyerToSeller
}
