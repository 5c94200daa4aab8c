// Package reviewrepo persists reviews. A unique index on (order_id,
// from_user_id) guarantees one review per party and order.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_order_author,priority:1"`
	FromUserID string    `gorm:"size:128;not null;uniqueIndex:idx_reviews_order_author,priority:2"`
	ToUserID   string    `gorm:"size:128;not null;index:idx_reviews_ratee,priority:1"`
	Role       string    `gorm:"size:16;not null;index:idx_reviews_ratee,priority:2"`
	ProductID  string    `gorm:"size:128"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID().Value(),
		OrderID:    r.OrderID().Value(),
		FromUserID: r.FromUserID().String(),
		ToUserID:   r.ToUserID().String(),
		Role:       string(r.Role()),
		ProductID:  r.ProductID(),
		Rating:     r.Rating().Int(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}

// ToDomain rebuilds a review from its row.
func ToDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID.String())
	if err != nil {
		return nil, err
	}
	from, err := kernel.NewUserID(dto.FromUserID)
	if err != nil {
		return nil, err
	}
	to, err := kernel.NewUserID(dto.ToUserID)
	if err != nil {
		return nil, err
	}
	role, err := review.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	rating, err := review.NewRating(dto.Rating)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, orderID, dto.ProductID, from, to, role, rating, dto.Comment, dto.CreatedAt.UTC()), nil
}
