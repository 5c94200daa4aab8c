package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand is a buyer or seller rating the other side of a
// delivered order. The direction of the review follows from the caller.
type SubmitReviewCommand struct {
	reviewID   kernel.UUID
	orderID    kernel.UUID
	fromUserID kernel.UserID
	rating     review.Rating
	comment    string

	guard guard.ConstructorGuard
}

func NewSubmitReviewCommand(
	reviewID, orderID kernel.UUID,
	fromUserID kernel.UserID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	r, ratingErr := review.NewRating(rating)
	if err := errors.Join(
		reviewID.Validate(),
		orderID.Validate(),
		fromUserID.Validate(),
		ratingErr,
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return SubmitReviewCommand{
		reviewID:   reviewID,
		orderID:    orderID,
		fromUserID: fromUserID,
		rating:     r,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) ReviewID() kernel.UUID     { return c.reviewID }
func (c SubmitReviewCommand) OrderID() kernel.UUID      { return c.orderID }
func (c SubmitReviewCommand) FromUserID() kernel.UserID { return c.fromUserID }
func (c SubmitReviewCommand) Rating() review.Rating     { return c.rating }
func (c SubmitReviewCommand) Comment() string           { return c.comment }
