// Package ratingrepo stores the public rating summary of each user.
package ratingrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRatingDTO struct {
	UserID      string          `gorm:"size:128;primaryKey"`
	Average     decimal.Decimal `gorm:"type:numeric(2,1);not null"`
	ReviewCount int             `gorm:"not null"`
	UpdatedAt   time.Time
}

func (UserRatingDTO) TableName() string {
	return "user_ratings"
}

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Lock takes a transaction scoped advisory lock keyed by the user id. It must
// run inside a transaction; the lock is released on commit or rollback.
func (r *GormRatingRepository) Lock(ctx context.Context, userID kernel.UserID) error {
	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "user_ratings:"+userID.String()).Error

	return pgerr.Wrap("lock rating", err)
}

// Save upserts the summary of summary.UserID().
func (r *GormRatingRepository) Save(ctx context.Context, summary review.RatingSummary) error {
	dto := UserRatingDTO{
		UserID:      summary.UserID().String(),
		Average:     summary.Average(),
		ReviewCount: summary.Count(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"average", "review_count", "updated_at"}),
		}).
		Create(&dto).Error

	return pgerr.Wrap("save rating", err)
}
