package review

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const maxCommentLength = 1000

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is written once per (order, author). The gate that decides whether
// it may be written lives in the submit review use case; the aggregate only
// checks its own fields.
type Review struct {
	id         kernel.UUID
	orderID    kernel.UUID
	productID  string
	fromUserID kernel.UserID
	toUserID   kernel.UserID
	role       Role
	rating     Rating
	comment    string
	createdAt  time.Time

	isConstructed bool
}

func NewReview(
	id, orderID kernel.UUID,
	productID string,
	fromUserID, toUserID kernel.UserID,
	role Role,
	rating Rating,
	comment string,
	now time.Time,
) (*Review, error) {
	comment = strings.TrimSpace(comment)

	var lengthErr error
	if utf8.RuneCountInString(comment) > maxCommentLength {
		lengthErr = errs.NewValueIsOutOfRangeError("comment length", utf8.RuneCountInString(comment), 0, maxCommentLength)
	}
	var ratingErr error
	if rating < MinRating || rating > MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", int(rating), MinRating, MaxRating)
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		fromUserID.Validate(),
		toUserID.Validate(),
		role.Validate(),
		ratingErr,
		lengthErr,
	); err != nil {
		return nil, err
	}
	if fromUserID.IsEqual(toUserID) {
		return nil, errs.NewValueIsInvalidError("review target differs from author")
	}

	return &Review{
		id:            id,
		orderID:       orderID,
		productID:     productID,
		fromUserID:    fromUserID,
		toUserID:      toUserID,
		role:          role,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreReview rebuilds a stored review. It trusts the stored values.
func RestoreReview(
	id, orderID kernel.UUID,
	productID string,
	fromUserID, toUserID kernel.UserID,
	role Role,
	rating Rating,
	comment string,
	createdAt time.Time,
) *Review {
	return &Review{
		id:            id,
		orderID:       orderID,
		productID:     productID,
		fromUserID:    fromUserID,
		toUserID:      toUserID,
		role:          role,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID           { return r.id }
func (r *Review) OrderID() kernel.UUID      { return r.orderID }
func (r *Review) ProductID() string         { return r.productID }
func (r *Review) FromUserID() kernel.UserID { return r.fromUserID }
func (r *Review) ToUserID() kernel.UserID   { return r.toUserID }
func (r *Review) Role() Role                { return r.role }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() string           { return r.comment }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
