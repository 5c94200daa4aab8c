package postgres

import (
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/ratingrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the orders, reviews and user_ratings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &reviewrepo.ReviewDTO{}, &ratingrepo.UserRatingDTO{})
}
