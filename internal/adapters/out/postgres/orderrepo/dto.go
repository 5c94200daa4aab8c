// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. The composite index serves the
// escalation scan (status, auto_dispute_at); version backs the conditional
// update.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID        string          `gorm:"size:128;not null;index"`
	SellerID       string          `gorm:"size:128;not null;index"`
	Product        ProductDTO      `gorm:"embedded;embeddedPrefix:product_"`
	DeliveryFee    int64           `gorm:"not null"`
	TotalAmount    int64           `gorm:"not null"`
	BrumerieFee    int64           `gorm:"not null"`
	SellerReceives int64           `gorm:"not null"`
	FeePercent     decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Payment        PaymentDTO      `gorm:"embedded;embeddedPrefix:payment_"`
	DeliveryType   string          `gorm:"size:16;not null"`

	ProofScreenshotRef  *string
	ProofTransactionRef *string
	ProofSubmittedAt    *time.Time

	Status         string     `gorm:"size:16;not null;index:idx_orders_status_deadline,priority:1"`
	AutoDisputeAt  *time.Time `gorm:"index:idx_orders_status_deadline,priority:2"`
	ReminderSentAt *time.Time
	DisputeReason  string `gorm:"type:text"`
	SellerBlocked  bool
	BuyerReviewed  bool
	SellerReviewed bool

	CreatedAt   time.Time `gorm:"not null"`
	ProofSentAt *time.Time
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	DisputedAt  *time.Time
	CancelledAt *time.Time

	Version int `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ProductDTO struct {
	ID    string `gorm:"size:128;not null"`
	Title string `gorm:"not null"`
	Image string
	Price int64 `gorm:"not null"`
}

type PaymentDTO struct {
	Method     string `gorm:"size:16;not null"`
	Phone      string `gorm:"size:32"`
	HolderName string
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	dto := OrderDTO{
		ID:       s.ID.Value(),
		BuyerID:  s.BuyerID.String(),
		SellerID: s.SellerID.String(),
		Product: ProductDTO{
			ID:    s.Product.ID(),
			Title: s.Product.Title(),
			Image: s.Product.Image(),
			Price: s.Product.Price(),
		},
		DeliveryFee:    s.Fees.DeliveryFee(),
		TotalAmount:    s.Fees.TotalAmount(),
		BrumerieFee:    s.Fees.PlatformFee(),
		SellerReceives: s.Fees.SellerReceives(),
		FeePercent:     s.Fees.FeePercent(),
		Payment: PaymentDTO{
			Method:     string(s.PaymentInfo.Method()),
			Phone:      s.PaymentInfo.Phone(),
			HolderName: s.PaymentInfo.HolderName(),
		},
		DeliveryType:   string(s.DeliveryType),
		Status:         s.Status.String(),
		AutoDisputeAt:  s.AutoDisputeAt,
		ReminderSentAt: s.ReminderSentAt,
		DisputeReason:  s.DisputeReason,
		SellerBlocked:  s.SellerBlocked,
		BuyerReviewed:  s.BuyerReviewed,
		SellerReviewed: s.SellerReviewed,
		CreatedAt:      s.CreatedAt,
		ProofSentAt:    s.ProofSentAt,
		ConfirmedAt:    s.ConfirmedAt,
		DeliveredAt:    s.DeliveredAt,
		DisputedAt:     s.DisputedAt,
		CancelledAt:    s.CancelledAt,
		Version:        s.Version,
	}

	if p := s.Proof; p != nil {
		screenshot, ref, at := p.ScreenshotRef(), p.TransactionRef(), p.SubmittedAt()
		dto.ProofScreenshotRef = &screenshot
		dto.ProofTransactionRef = &ref
		dto.ProofSubmittedAt = &at
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID.String())
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.NewUserID(dto.BuyerID)
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.NewUserID(dto.SellerID)
	if err != nil {
		return nil, err
	}
	product, err := order.NewProduct(dto.Product.ID, dto.Product.Title, dto.Product.Image, dto.Product.Price)
	if err != nil {
		return nil, err
	}
	fees, err := order.RestoreFees(dto.DeliveryFee, dto.TotalAmount, dto.BrumerieFee, dto.SellerReceives, dto.FeePercent)
	if err != nil {
		return nil, err
	}
	payment, err := order.NewPaymentInfo(order.PaymentMethod(dto.Payment.Method), dto.Payment.Phone, dto.Payment.HolderName)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var proof *order.Proof
	if dto.ProofTransactionRef != nil && dto.ProofScreenshotRef != nil && dto.ProofSubmittedAt != nil {
		p, proofErr := order.NewProof(*dto.ProofScreenshotRef, *dto.ProofTransactionRef, dto.ProofSubmittedAt.UTC())
		if proofErr != nil {
			return nil, proofErr
		}
		proof = &p
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		BuyerID:        buyerID,
		SellerID:       sellerID,
		Product:        product,
		Fees:           fees,
		PaymentInfo:    payment,
		DeliveryType:   deliveryType,
		Proof:          proof,
		Status:         status,
		AutoDisputeAt:  utc(dto.AutoDisputeAt),
		ReminderSentAt: utc(dto.ReminderSentAt),
		DisputeReason:  dto.DisputeReason,
		SellerBlocked:  dto.SellerBlocked,
		BuyerReviewed:  dto.BuyerReviewed,
		SellerReviewed: dto.SellerReviewed,
		CreatedAt:      dto.CreatedAt.UTC(),
		ProofSentAt:    utc(dto.ProofSentAt),
		ConfirmedAt:    utc(dto.ConfirmedAt),
		DeliveredAt:    utc(dto.DeliveredAt),
		DisputedAt:     utc(dto.DisputedAt),
		CancelledAt:    utc(dto.CancelledAt),
		Version:        dto.Version,
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
