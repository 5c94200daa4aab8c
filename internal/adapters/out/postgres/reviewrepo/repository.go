package reviewrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add inserts the review. A second review of the same order by the same
// author fails with errs.ErrAlreadyReviewed.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.ErrAlreadyReviewed
		}
		return pgerr.Wrap("add review", err)
	}

	return nil
}

func (r *GormReviewRepository) Exists(ctx context.Context, orderID kernel.UUID, fromUserID kernel.UserID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("order_id = ? AND from_user_id = ?", orderID.Value(), fromUserID.String()).
		Count(&count).Error
	if err != nil {
		return false, pgerr.Wrap("check review", err)
	}

	return count > 0, nil
}

func (r *GormReviewRepository) ListRatings(
	ctx context.Context,
	toUserID kernel.UserID,
	role review.Role,
) ([]review.Rating, error) {
	var values []int
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("to_user_id = ? AND role = ?", toUserID.String(), string(role)).
		Pluck("rating", &values).Error
	if err != nil {
		return nil, pgerr.Wrap("list ratings", err)
	}

	ratings := make([]review.Rating, 0, len(values))
	for _, v := range values {
		rating, ratingErr := review.NewRating(v)
		if ratingErr != nil {
			return nil, ratingErr
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}
