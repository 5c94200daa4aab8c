package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository stores reviews. Uniqueness of (order, author) is enforced
// by storage; Add reports a violation as errs.ErrAlreadyReviewed.
type ReviewRepository interface {
	Add(ctx context.Context, aggregate *review.Review) error

	// Exists reports whether author already reviewed the order.
	Exists(ctx context.Context, orderID kernel.UUID, fromUserID kernel.UserID) (bool, error)

	// ListRatings returns every rating userID received in the given direction.
	ListRatings(ctx context.Context, toUserID kernel.UserID, role review.Role) ([]review.Rating, error)
}

// RatingRepository stores the denormalized public rating of each user.
type RatingRepository interface {
	// Lock serializes rating recomputation for userID until the transaction ends.
	Lock(ctx context.Context, userID kernel.UserID) error

	// Save overwrites the summary of summary.UserID().
	Save(ctx context.Context, summary review.RatingSummary) error
}
