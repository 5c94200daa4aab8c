package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetUserRatingQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRatingQueryHandler(db *gorm.DB) GetUserRatingQueryHandler {
	return GetUserRatingQueryHandler{db: db}
}

func (h GetUserRatingQueryHandler) Handle(ctx context.Context, query GetUserRatingQuery) (UserRatingView, error) {
	if err := query.Validate(); err != nil {
		return UserRatingView{}, err
	}

	view := UserRatingView{UserID: query.UserID().String(), Average: decimal.Zero}

	var rows []struct {
		Average     decimal.Decimal
		ReviewCount int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT average, review_count
		FROM user_ratings
		WHERE user_id = ?
	`, view.UserID).Scan(&rows).Error
	if err != nil {
		return UserRatingView{}, err
	}

	if len(rows) > 0 {
		view.Average = rows[0].Average
		view.ReviewCount = rows[0].ReviewCount
	}

	return view, nil
}
