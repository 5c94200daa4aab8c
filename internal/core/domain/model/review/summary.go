package review

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// RatingSummary is the public rating of a user: the mean of every
// buyer_to_seller rating they received, rounded to one decimal, and the
// number of those ratings.
type RatingSummary struct {
	userID  kernel.UserID
	average decimal.Decimal
	count   int
}

func NewRatingSummary(userID kernel.UserID, average decimal.Decimal, count int) RatingSummary {
	return RatingSummary{userID: userID, average: average, count: count}
}

func (s RatingSummary) UserID() kernel.UserID    { return s.userID }
func (s RatingSummary) Average() decimal.Decimal { return s.average }
func (s RatingSummary) Count() int               { return s.count }
