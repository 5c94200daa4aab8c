package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/shopspring/decimal"
)

// RatingAggregator recomputes a user's public rating from scratch over every
// rating they received. A full re-aggregation stays correct when reviews are
// written concurrently, which a running average would not.
type RatingAggregator struct{}

func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Aggregate averages ratings and rounds the mean half away from zero to one
// decimal. An empty input yields a zero average and zero count.
func (RatingAggregator) Aggregate(userID kernel.UserID, ratings []review.Rating) review.RatingSummary {
	if len(ratings) == 0 {
		return review.NewRatingSummary(userID, decimal.Zero, 0)
	}

	sum := int64(0)
	for _, r := range ratings {
		sum += int64(r)
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(ratings)))).Round(1)

	return review.NewRatingSummary(userID, avg, len(ratings))
}
