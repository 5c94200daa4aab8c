package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUserReviewsQueryHandler struct {
	db *gorm.DB
}

func NewListUserReviewsQueryHandler(db *gorm.DB) ListUserReviewsQueryHandler {
	return ListUserReviewsQueryHandler{db: db}
}

func (h ListUserReviewsQueryHandler) Handle(ctx context.Context, query ListUserReviewsQuery) ([]ReviewView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, product_id, from_user_id, role, rating, comment, created_at
		FROM reviews
		WHERE to_user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.UserID().String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			id, orderID uuid.UUID
			view        ReviewView
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &orderID, &view.ProductID, &view.FromUserID, &view.Role,
			&view.Rating, &view.Comment, &createdAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromString(id.String()); err != nil {
			return nil, err
		}
		if view.OrderID, err = kernel.UUIDFromString(orderID.String()); err != nil {
			return nil, err
		}
		view.CreatedAt = createdAt.UTC()
		reviews = append(reviews, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
