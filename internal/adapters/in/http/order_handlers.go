package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. Retrying with a client supplied
// id that was already stored answers 409 instead of creating a duplicate.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := newCreateOrderCommand(c, req)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID().String()})
}

func newCreateOrderCommand(c echo.Context, req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	buyerID, err := callerID(c)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	orderID := kernel.NewUUID()
	if req.ID != "" {
		if orderID, err = kernel.UUIDFromString(req.ID); err != nil {
			return commands.CreateOrderCommand{}, err
		}
	}

	sellerID, sellerErr := kernel.NewUserID(req.SellerID)
	product, productErr := order.NewProduct(req.Product.ID, req.Product.Title, req.Product.Image, req.Product.Price)
	payment, paymentErr := order.NewPaymentInfo(
		order.PaymentMethod(req.Payment.Method),
		req.Payment.Phone,
		req.Payment.HolderName,
	)
	deliveryType, deliveryErr := order.ParseDeliveryType(req.DeliveryType)
	if err := errors.Join(sellerErr, productErr, paymentErr, deliveryErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(orderID, buyerID, sellerID, product, payment, req.DeliveryFee, deliveryType)
}

// GetOrder handles GET /api/v1/orders/:id. Orders of other users are
// reported as missing.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, caller)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(view))
}

// ListOrders handles GET /api/v1/orders?role=buyer|seller.
func (s *Server) ListOrders(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return s.fail(c, err)
	}
	role, err := roleParam(c)
	if err != nil {
		return s.fail(c, err)
	}
	limit, err := limitParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListUserOrdersQuery(caller, queries.PartyRole(role), limit)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderResponse, len(views))
	for i, v := range views {
		response[i] = newOrderResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

// SubmitProof handles POST /api/v1/orders/:id/proof.
func (s *Server) SubmitProof(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req SubmitProofRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSubmitProofCommand(orderID, caller, req.ScreenshotRef, req.TransactionRef)
	if err != nil {
		return s.fail(c, err)
	}

	return s.transitioned(c, s.h.SubmitProof.Handle(c.Request().Context(), cmd))
}

// ConfirmReceipt handles POST /api/v1/orders/:id/confirm-receipt.
func (s *Server) ConfirmReceipt(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewConfirmReceiptCommand(orderID, caller)
	if err != nil {
		return s.fail(c, err)
	}

	return s.transitioned(c, s.h.ConfirmReceipt.Handle(c.Request().Context(), cmd))
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, caller)
	if err != nil {
		return s.fail(c, err)
	}

	return s.transitioned(c, s.h.ConfirmDelivery.Handle(c.Request().Context(), cmd))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, caller)
	if err != nil {
		return s.fail(c, err)
	}

	return s.transitioned(c, s.h.CancelOrder.Handle(c.Request().Context(), cmd))
}

// OpenDispute handles POST /api/v1/orders/:id/dispute.
func (s *Server) OpenDispute(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req OpenDisputeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewOpenDisputeCommand(orderID, caller, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	return s.transitioned(c, s.h.OpenDispute.Handle(c.Request().Context(), cmd))
}

// SubmitReview handles POST /api/v1/orders/:id/reviews.
func (s *Server) SubmitReview(c echo.Context) error {
	orderID, caller, err := orderAndCaller(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), orderID, caller, req.Rating, req.Comment)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.SubmitReview.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ReviewID().String()})
}

func (s *Server) transitioned(c echo.Context, err error) error {
	if err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func orderAndCaller(c echo.Context) (kernel.UUID, kernel.UserID, error) {
	orderID, err := orderIDParam(c)
	if err != nil {
		return kernel.UUID{}, kernel.UserID{}, err
	}
	caller, err := callerID(c)
	if err != nil {
		return kernel.UUID{}, kernel.UserID{}, err
	}
	return orderID, caller, nil
}
