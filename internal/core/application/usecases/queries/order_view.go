// Package queries contains read-only use cases. Handlers query the tables
// directly with SQL and return flat views; they never load aggregates.
package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderView is the read model of one order as shown to its buyer or seller.
type OrderView struct {
	ID                kernel.UUID
	BuyerID           string
	SellerID          string
	ProductID         string
	ProductTitle      string
	ProductImage      string
	ProductPrice      int64
	DeliveryFee       int64
	TotalAmount       int64
	PlatformFee       int64
	SellerReceives    int64
	PaymentMethod     string
	PaymentPhone      string
	PaymentHolderName string
	DeliveryType      string
	Status            string
	ScreenshotRef     string
	TransactionRef    string
	AutoDisputeAt     *time.Time
	ReminderSentAt    *time.Time
	DisputeReason     string
	SellerBlocked     bool
	BuyerReviewed     bool
	SellerReviewed    bool
	CreatedAt         time.Time
	ProofSentAt       *time.Time
	ConfirmedAt       *time.Time
	DeliveredAt       *time.Time
	DisputedAt        *time.Time
	CancelledAt       *time.Time
}

const orderViewColumns = `
	id, buyer_id, seller_id,
	product_id, product_title, product_image, product_price,
	delivery_fee, total_amount, brumerie_fee, seller_receives,
	payment_method, payment_phone, payment_holder_name, delivery_type,
	status, COALESCE(proof_screenshot_ref, '') AS proof_screenshot_ref,
	COALESCE(proof_transaction_ref, '') AS proof_transaction_ref,
	auto_dispute_at, reminder_sent_at, dispute_reason,
	seller_blocked, buyer_reviewed, seller_reviewed,
	created_at, proof_sent_at, confirmed_at, delivered_at, disputed_at, cancelled_at`

// orderRow receives orderViewColumns; GORM maps the columns by name.
type orderRow struct {
	ID                  uuid.UUID
	BuyerID             string
	SellerID            string
	ProductID           string
	ProductTitle        string
	ProductImage        string
	ProductPrice        int64
	DeliveryFee         int64
	TotalAmount         int64
	BrumerieFee         int64
	SellerReceives      int64
	PaymentMethod       string
	PaymentPhone        string
	PaymentHolderName   string
	DeliveryType        string
	Status              string
	ProofScreenshotRef  string
	ProofTransactionRef string
	AutoDisputeAt       *time.Time
	ReminderSentAt      *time.Time
	DisputeReason       string
	SellerBlocked       bool
	BuyerReviewed       bool
	SellerReviewed      bool
	CreatedAt           time.Time
	ProofSentAt         *time.Time
	ConfirmedAt         *time.Time
	DeliveredAt         *time.Time
	DisputedAt          *time.Time
	CancelledAt         *time.Time
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromString(r.ID.String())
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:                id,
		BuyerID:           r.BuyerID,
		SellerID:          r.SellerID,
		ProductID:         r.ProductID,
		ProductTitle:      r.ProductTitle,
		ProductImage:      r.ProductImage,
		ProductPrice:      r.ProductPrice,
		DeliveryFee:       r.DeliveryFee,
		TotalAmount:       r.TotalAmount,
		PlatformFee:       r.BrumerieFee,
		SellerReceives:    r.SellerReceives,
		PaymentMethod:     r.PaymentMethod,
		PaymentPhone:      r.PaymentPhone,
		PaymentHolderName: r.PaymentHolderName,
		DeliveryType:      r.DeliveryType,
		Status:            r.Status,
		ScreenshotRef:     r.ProofScreenshotRef,
		TransactionRef:    r.ProofTransactionRef,
		AutoDisputeAt:     utc(r.AutoDisputeAt),
		ReminderSentAt:    utc(r.ReminderSentAt),
		DisputeReason:     r.DisputeReason,
		SellerBlocked:     r.SellerBlocked,
		BuyerReviewed:     r.BuyerReviewed,
		SellerReviewed:    r.SellerReviewed,
		CreatedAt:         r.CreatedAt.UTC(),
		ProofSentAt:       utc(r.ProofSentAt),
		ConfirmedAt:       utc(r.ConfirmedAt),
		DeliveredAt:       utc(r.DeliveredAt),
		DisputedAt:        utc(r.DisputedAt),
		CancelledAt:       utc(r.CancelledAt),
	}, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
