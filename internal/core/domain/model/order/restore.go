package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Snapshot carries the persisted state of an order. It is the only way for
// adapters to rebuild an aggregate without replaying its transitions.
type Snapshot struct {
	ID             kernel.UUID
	BuyerID        kernel.UserID
	SellerID       kernel.UserID
	Product        Product
	Fees           Fees
	PaymentInfo    PaymentInfo
	DeliveryType   DeliveryType
	Proof          *Proof
	Status         Status
	AutoDisputeAt  *time.Time
	ReminderSentAt *time.Time
	DisputeReason  string
	SellerBlocked  bool
	BuyerReviewed  bool
	SellerReviewed bool
	CreatedAt      time.Time
	ProofSentAt    *time.Time
	ConfirmedAt    *time.Time
	DeliveredAt    *time.Time
	DisputedAt     *time.Time
	CancelledAt    *time.Time
	Version        int
}

// RestoreOrder rebuilds an order loaded from storage. It checks identity and
// the status/proof consistency but applies no transition guards.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.BuyerID.Validate(),
		s.SellerID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if s.Proof == nil && requiresProof(s.Status, s.ProofSentAt) {
		return nil, errs.NewValueIsRequiredError("proof")
	}

	return &Order{
		id:             s.ID,
		buyerID:        s.BuyerID,
		sellerID:       s.SellerID,
		product:        s.Product,
		fees:           s.Fees,
		paymentInfo:    s.PaymentInfo,
		deliveryType:   s.DeliveryType,
		proof:          s.Proof,
		status:         s.Status,
		autoDisputeAt:  s.AutoDisputeAt,
		reminderSentAt: s.ReminderSentAt,
		disputeReason:  s.DisputeReason,
		sellerBlocked:  s.SellerBlocked,
		buyerReviewed:  s.BuyerReviewed,
		sellerReviewed: s.SellerReviewed,
		createdAt:      s.CreatedAt,
		proofSentAt:    s.ProofSentAt,
		confirmedAt:    s.ConfirmedAt,
		deliveredAt:    s.DeliveredAt,
		disputedAt:     s.DisputedAt,
		cancelledAt:    s.CancelledAt,
		version:        s.Version,
		isConstructed:  true,
	}, nil
}

// Snapshot exports the current state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		BuyerID:        o.buyerID,
		SellerID:       o.sellerID,
		Product:        o.product,
		Fees:           o.fees,
		PaymentInfo:    o.paymentInfo,
		DeliveryType:   o.deliveryType,
		Proof:          o.proof,
		Status:         o.status,
		AutoDisputeAt:  o.autoDisputeAt,
		ReminderSentAt: o.reminderSentAt,
		DisputeReason:  o.disputeReason,
		SellerBlocked:  o.sellerBlocked,
		BuyerReviewed:  o.buyerReviewed,
		SellerReviewed: o.sellerReviewed,
		CreatedAt:      o.createdAt,
		ProofSentAt:    o.proofSentAt,
		ConfirmedAt:    o.confirmedAt,
		DeliveredAt:    o.deliveredAt,
		DisputedAt:     o.disputedAt,
		CancelledAt:    o.cancelledAt,
		Version:        o.version,
	}
}

// requiresProof: a manual dispute from initiated is the only way past
// initiated without a proof.
func requiresProof(status Status, proofSentAt *time.Time) bool {
	switch status {
	case ProofSent, Confirmed, Delivered:
		return true
	case Disputed:
		return proofSentAt != nil
	default:
		return false
	}
}
