package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUserRatingQueryIsNotConstructed = errors.New(
	"GetUserRatingQuery must be created via NewGetUserRatingQuery constructor",
)

// GetUserRatingQuery reads the public rating of a user, as refreshed by
// buyer reviews.
type GetUserRatingQuery struct {
	userID kernel.UserID
	guard  guard.ConstructorGuard
}

func NewGetUserRatingQuery(userID kernel.UserID) (GetUserRatingQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserRatingQuery{}, err
	}
	return GetUserRatingQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRatingQueryIsNotConstructed)
}

func (q GetUserRatingQuery) UserID() kernel.UserID { return q.userID }

// UserRatingView is zero valued for users nobody reviewed yet.
type UserRatingView struct {
	UserID      string
	Average     decimal.Decimal
	ReviewCount int
}
