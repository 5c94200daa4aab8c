package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetUserRating handles GET /api/v1/users/:id/rating. Ratings are public.
func (s *Server) GetUserRating(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetUserRatingQuery(userID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetUserRating.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, RatingResponse{
		UserID:      view.UserID,
		Average:     view.Average,
		ReviewCount: view.ReviewCount,
	})
}

// ListUserReviews handles GET /api/v1/users/:id/reviews.
func (s *Server) ListUserReviews(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}
	limit, err := limitParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListUserReviewsQuery(userID, limit)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListUserReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]ReviewResponse, len(views))
	for i, v := range views {
		response[i] = newReviewResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}
