package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListUserReviewsQueryIsNotConstructed = errors.New(
	"ListUserReviewsQuery must be created via NewListUserReviewsQuery constructor",
)

// ListUserReviewsQuery lists the reviews a user received, newest first.
type ListUserReviewsQuery struct {
	userID kernel.UserID
	limit  int

	guard guard.ConstructorGuard
}

func NewListUserReviewsQuery(userID kernel.UserID, limit int) (ListUserReviewsQuery, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	var limitErr error
	if limit < 1 || limit > MaxListLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if err := errors.Join(userID.Validate(), limitErr); err != nil {
		return ListUserReviewsQuery{}, err
	}

	return ListUserReviewsQuery{userID: userID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUserReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListUserReviewsQueryIsNotConstructed)
}

func (q ListUserReviewsQuery) UserID() kernel.UserID { return q.userID }
func (q ListUserReviewsQuery) Limit() int            { return q.limit }

type ReviewView struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	ProductID  string
	FromUserID string
	Role       string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
