package queries

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// PartyRole selects which side of their orders a user is listing.
type PartyRole string

const (
	PartyRoleBuyer  PartyRole = "buyer"
	PartyRoleSeller PartyRole = "seller"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListUserOrdersQuery lists the orders a user bought or sold, newest first.
type ListUserOrdersQuery struct {
	userID kernel.UserID
	role   PartyRole
	limit  int

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery defaults a zero limit to DefaultListLimit.
func NewListUserOrdersQuery(userID kernel.UserID, role PartyRole, limit int) (ListUserOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	var roleErr error
	if role != PartyRoleBuyer && role != PartyRoleSeller {
		roleErr = errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is neither buyer nor seller", string(role)))
	}
	var limitErr error
	if limit < 1 || limit > MaxListLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if err := errors.Join(userID.Validate(), roleErr, limitErr); err != nil {
		return ListUserOrdersQuery{}, err
	}

	return ListUserOrdersQuery{
		userID: userID,
		role:   role,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

func (q ListUserOrdersQuery) UserID() kernel.UserID { return q.userID }
func (q ListUserOrdersQuery) Role() PartyRole       { return q.role }
func (q ListUserOrdersQuery) Limit() int            { return q.limit }
