package http

import (
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type CreateOrderRequest struct {
	ID           string         `json:"id,omitempty"`
	SellerID     string         `json:"seller_id"`
	Product      ProductPayload `json:"product"`
	Payment      PaymentPayload `json:"payment"`
	DeliveryFee  int64          `json:"delivery_fee"`
	DeliveryType string         `json:"delivery_type,omitempty"`
}

type ProductPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
	Price int64  `json:"price"`
}

type PaymentPayload struct {
	Method     string `json:"method"`
	Phone      string `json:"phone"`
	HolderName string `json:"holder_name"`
}

type SubmitProofRequest struct {
	ScreenshotRef  string `json:"screenshot_ref"`
	TransactionRef string `json:"transaction_ref"`
}

type OpenDisputeRequest struct {
	Reason string `json:"reason"`
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type ProofPayload struct {
	ScreenshotRef  string     `json:"screenshot_ref"`
	TransactionRef string     `json:"transaction_ref"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
}

type OrderResponse struct {
	ID             string         `json:"id"`
	BuyerID        string         `json:"buyer_id"`
	SellerID       string         `json:"seller_id"`
	Product        ProductPayload `json:"product"`
	Payment        PaymentPayload `json:"payment"`
	DeliveryFee    int64          `json:"delivery_fee"`
	TotalAmount    int64          `json:"total_amount"`
	BrumerieFee    int64          `json:"brumerie_fee"`
	SellerReceives int64          `json:"seller_receives"`
	DeliveryType   string         `json:"delivery_type"`
	Status         string         `json:"status"`
	Proof          *ProofPayload  `json:"proof,omitempty"`
	AutoDisputeAt  *time.Time     `json:"auto_dispute_at,omitempty"`
	ReminderSentAt *time.Time     `json:"reminder_sent_at,omitempty"`
	DisputeReason  string         `json:"dispute_reason,omitempty"`
	SellerBlocked  bool           `json:"seller_blocked"`
	BuyerReviewed  bool           `json:"buyer_reviewed"`
	SellerReviewed bool           `json:"seller_reviewed"`
	CreatedAt      time.Time      `json:"created_at"`
	ConfirmedAt    *time.Time     `json:"confirmed_at,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	DisputedAt     *time.Time     `json:"disputed_at,omitempty"`
	CancelledAt    *time.Time     `json:"cancelled_at,omitempty"`
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	resp := OrderResponse{
		ID:       v.ID.String(),
		BuyerID:  v.BuyerID,
		SellerID: v.SellerID,
		Product: ProductPayload{
			ID:    v.ProductID,
			Title: v.ProductTitle,
			Image: v.ProductImage,
			Price: v.ProductPrice,
		},
		Payment: PaymentPayload{
			Method:     v.PaymentMethod,
			Phone:      v.PaymentPhone,
			HolderName: v.PaymentHolderName,
		},
		DeliveryFee:    v.DeliveryFee,
		TotalAmount:    v.TotalAmount,
		BrumerieFee:    v.PlatformFee,
		SellerReceives: v.SellerReceives,
		DeliveryType:   v.DeliveryType,
		Status:         v.Status,
		AutoDisputeAt:  v.AutoDisputeAt,
		ReminderSentAt: v.ReminderSentAt,
		DisputeReason:  v.DisputeReason,
		SellerBlocked:  v.SellerBlocked,
		BuyerReviewed:  v.BuyerReviewed,
		SellerReviewed: v.SellerReviewed,
		CreatedAt:      v.CreatedAt,
		ConfirmedAt:    v.ConfirmedAt,
		DeliveredAt:    v.DeliveredAt,
		DisputedAt:     v.DisputedAt,
		CancelledAt:    v.CancelledAt,
	}
	if v.TransactionRef != "" {
		resp.Proof = &ProofPayload{
			ScreenshotRef:  v.ScreenshotRef,
			TransactionRef: v.TransactionRef,
			SubmittedAt:    v.ProofSentAt,
		}
	}
	return resp
}

type RatingResponse struct {
	UserID      string          `json:"user_id"`
	Average     decimal.Decimal `json:"average"`
	ReviewCount int             `json:"review_count"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	ProductID  string    `json:"product_id"`
	FromUserID string    `json:"from_user_id"`
	Role       string    `json:"role"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newReviewResponse(v queries.ReviewView) ReviewResponse {
	return ReviewResponse{
		ID:         v.ID.String(),
		OrderID:    v.OrderID.String(),
		ProductID:  v.ProductID,
		FromUserID: v.FromUserID,
		Role:       v.Role,
		Rating:     v.Rating,
		Comment:    v.Comment,
		CreatedAt:  v.CreatedAt,
	}
}
