// Package http exposes the order lifecycle over a JSON API. The caller of
// every order operation is identified by the X-User-ID header, which an
// upstream gateway sets after authentication.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CommandHandler runs one state-changing use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler runs one read-only use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder     CommandHandler[commands.CreateOrderCommand]
	SubmitProof     CommandHandler[commands.SubmitProofCommand]
	ConfirmReceipt  CommandHandler[commands.ConfirmReceiptCommand]
	ConfirmDelivery CommandHandler[commands.ConfirmDeliveryCommand]
	CancelOrder     CommandHandler[commands.CancelOrderCommand]
	OpenDispute     CommandHandler[commands.OpenDisputeCommand]
	SubmitReview    CommandHandler[commands.SubmitReviewCommand]

	// Query handlers
	GetOrder        QueryHandler[queries.GetOrderQuery, queries.OrderView]
	ListUserOrders  QueryHandler[queries.ListUserOrdersQuery, []queries.OrderView]
	GetUserRating   QueryHandler[queries.GetUserRatingQuery, queries.UserRatingView]
	ListUserReviews QueryHandler[queries.ListUserReviewsQuery, []queries.ReviewView]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API and the health probe on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/proof", s.SubmitProof)
	v1.POST("/orders/:id/confirm-receipt", s.ConfirmReceipt)
	v1.POST("/orders/:id/confirm-delivery", s.ConfirmDelivery)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/dispute", s.OpenDispute)
	v1.POST("/orders/:id/reviews", s.SubmitReview)

	v1.GET("/users/:id/rating", s.GetUserRating)
	v1.GET("/users/:id/reviews", s.ListUserReviews)
}
