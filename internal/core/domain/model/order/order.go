package order

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// AutoDisputeDelay is how long after the proof the order may stay in
	// ProofSent or Confirmed before it escalates on its own.
	AutoDisputeDelay = 24 * time.Hour

	// ReminderDelay is how long after the proof the seller gets a nudge to
	// confirm the payment.
	ReminderDelay = 6 * time.Hour

	// AutoTimeoutReason is stored as disputeReason on escalated orders.
	AutoTimeoutReason = "auto-timeout"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a single buyer/seller transaction. It owns the
// status machine and every field whose value depends on it: proof, timers,
// dispute metadata, review flags and the audit timestamps. Timestamps are set
// once on entering the matching status and never overwritten.
//
// Every mutating method either applies the whole transition or leaves the
// order untouched and returns a PreconditionFailedError naming the guard.
type Order struct {
	id           kernel.UUID
	buyerID      kernel.UserID
	sellerID     kernel.UserID
	product      Product
	fees         Fees
	paymentInfo  PaymentInfo
	deliveryType DeliveryType
	proof        *Proof
	status       Status

	autoDisputeAt  *time.Time
	reminderSentAt *time.Time

	disputeReason string
	sellerBlocked bool

	buyerReviewed  bool
	sellerReviewed bool

	createdAt   time.Time
	proofSentAt *time.Time
	confirmedAt *time.Time
	deliveredAt *time.Time
	disputedAt  *time.Time
	cancelledAt *time.Time

	// version is the optimistic concurrency counter read from storage.
	version int

	events []Event

	isConstructed bool
}

// NewOrder places a new order in status Initiated.
//
// The product and payment info are snapshots: they are copied into the order
// and never refreshed. feePercent is frozen into the fee split.
//
// Guards:
//   - buyer and seller differ
//   - product price is positive
func NewOrder(
	id kernel.UUID,
	buyerID, sellerID kernel.UserID,
	product Product,
	paymentInfo PaymentInfo,
	deliveryFee int64,
	feePercent decimal.Decimal,
	deliveryType DeliveryType,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
	); err != nil {
		return nil, err
	}
	if buyerID.IsEqual(sellerID) {
		return nil, errs.NewPreconditionFailedError("buyer differs from seller")
	}

	fees, err := NewFees(product.Price(), deliveryFee, feePercent)
	if err != nil {
		return nil, err
	}

	if deliveryType == "" {
		deliveryType = DeliveryTypeDelivery
	}

	o := &Order{
		id:            id,
		buyerID:       buyerID,
		sellerID:      sellerID,
		product:       product,
		fees:          fees,
		paymentInfo:   paymentInfo,
		deliveryType:  deliveryType,
		status:        Initiated,
		createdAt:     now,
		isConstructed: true,
	}
	o.record(EventOrderInitiated, now, nil, o.sellerID)

	return o, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) BuyerID() kernel.UserID     { return o.buyerID }
func (o *Order) SellerID() kernel.UserID    { return o.sellerID }
func (o *Order) Product() Product           { return o.product }
func (o *Order) Fees() Fees                 { return o.fees }
func (o *Order) PaymentInfo() PaymentInfo   { return o.paymentInfo }
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }
func (o *Order) Proof() *Proof              { return o.proof }
func (o *Order) Status() Status             { return o.status }
func (o *Order) AutoDisputeAt() *time.Time  { return o.autoDisputeAt }
func (o *Order) ReminderSentAt() *time.Time { return o.reminderSentAt }
func (o *Order) DisputeReason() string      { return o.disputeReason }
func (o *Order) SellerBlocked() bool        { return o.sellerBlocked }
func (o *Order) BuyerReviewed() bool        { return o.buyerReviewed }
func (o *Order) SellerReviewed() bool       { return o.sellerReviewed }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }
func (o *Order) ProofSentAt() *time.Time    { return o.proofSentAt }
func (o *Order) ConfirmedAt() *time.Time    { return o.confirmedAt }
func (o *Order) DeliveredAt() *time.Time    { return o.deliveredAt }
func (o *Order) DisputedAt() *time.Time     { return o.disputedAt }
func (o *Order) CancelledAt() *time.Time    { return o.cancelledAt }
func (o *Order) Version() int               { return o.version }

func (o *Order) IsBuyer(userID kernel.UserID) bool  { return o.buyerID.IsEqual(userID) }
func (o *Order) IsSeller(userID kernel.UserID) bool { return o.sellerID.IsEqual(userID) }
func (o *Order) IsParty(userID kernel.UserID) bool  { return o.IsBuyer(userID) || o.IsSeller(userID) }

// Counterparty returns the other side of the deal for a buyer or seller.
func (o *Order) Counterparty(userID kernel.UserID) (kernel.UserID, error) {
	switch {
	case o.IsBuyer(userID):
		return o.sellerID, nil
	case o.IsSeller(userID):
		return o.buyerID, nil
	default:
		return kernel.UserID{}, errs.NewPreconditionFailedError("caller is buyer or seller")
	}
}

// SubmitProof moves Initiated -> ProofSent and arms the auto-dispute deadline.
// Only the buyer may submit, and both references must be present.
func (o *Order) SubmitProof(caller kernel.UserID, screenshotRef, transactionRef string, now time.Time) error {
	next, err := o.status.SubmitProof()
	if err != nil {
		return err
	}
	if !o.IsBuyer(caller) {
		return errs.NewPreconditionFailedError("caller is buyer")
	}
	proof, err := NewProof(screenshotRef, transactionRef, now)
	if err != nil {
		return err
	}

	deadline := now.Add(AutoDisputeDelay)
	o.status = next
	o.proof = &proof
	o.proofSentAt = stamp(o.proofSentAt, now)
	o.autoDisputeAt = &deadline
	o.record(EventProofSent, now, map[string]any{"transactionRef": proof.TransactionRef()}, o.sellerID)
	return nil
}

// Cancel moves Initiated -> Cancelled. Either party may cancel.
func (o *Order) Cancel(caller kernel.UserID, now time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	other, err := o.Counterparty(caller)
	if err != nil {
		return err
	}

	o.status = next
	o.cancelledAt = stamp(o.cancelledAt, now)
	o.record(EventOrderCancelled, now, map[string]any{"cancelledBy": caller.String()}, other)
	return nil
}

// ConfirmReceipt is the seller acknowledging the money: ProofSent -> Confirmed.
// The auto-dispute deadline keeps running until delivery.
func (o *Order) ConfirmReceipt(caller kernel.UserID, now time.Time) error {
	next, err := o.status.ConfirmReceipt()
	if err != nil {
		return err
	}
	if !o.IsSeller(caller) {
		return errs.NewPreconditionFailedError("caller is seller")
	}

	o.status = next
	o.confirmedAt = stamp(o.confirmedAt, now)
	o.record(EventPaymentConfirmed, now, nil, o.buyerID)
	return nil
}

// ConfirmDelivery is the buyer acknowledging the goods: Confirmed -> Delivered.
func (o *Order) ConfirmDelivery(caller kernel.UserID, now time.Time) error {
	next, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}
	if !o.IsBuyer(caller) {
		return errs.NewPreconditionFailedError("caller is buyer")
	}

	o.status = next
	o.deliveredAt = stamp(o.deliveredAt, now)
	o.record(EventOrderDelivered, now, map[string]any{"promptReview": true}, o.sellerID)
	return nil
}

// Dispute opens a manual dispute from any non-terminal status.
func (o *Order) Dispute(caller kernel.UserID, reason string, now time.Time) error {
	next, err := o.status.Dispute()
	if err != nil {
		return err
	}
	if !o.IsParty(caller) {
		return errs.NewPreconditionFailedError("caller is buyer or seller")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewPreconditionFailedError("dispute reason is provided")
	}

	o.status = next
	o.disputedAt = stamp(o.disputedAt, now)
	o.disputeReason = reason
	o.record(EventOrderDisputed, now, map[string]any{"reason": reason, "openedBy": caller.String()},
		o.buyerID, o.sellerID)
	return nil
}

// Escalate applies the timeout edge: the order is disputed and the seller is
// blocked. It fails once the order is terminal or before the deadline, which
// makes repeated scans harmless.
func (o *Order) Escalate(now time.Time) error {
	next, err := o.status.Escalate()
	if err != nil {
		return err
	}
	if !o.IsOverdue(now) {
		return errs.NewPreconditionFailedError("auto-dispute deadline has passed")
	}

	o.status = next
	o.disputedAt = stamp(o.disputedAt, now)
	o.sellerBlocked = true
	o.disputeReason = AutoTimeoutReason
	o.record(EventOrderDisputed, now, map[string]any{"reason": AutoTimeoutReason}, o.buyerID, o.sellerID)
	return nil
}

// IsOverdue reports whether the auto-dispute deadline is armed and reached.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.status.IsEscalatable() && o.autoDisputeAt != nil && !now.Before(*o.autoDisputeAt)
}

// SendPaymentReminder records the one-off reminder to a seller who has not
// confirmed a payment ReminderDelay after the proof. Status is unchanged.
func (o *Order) SendPaymentReminder(now time.Time) error {
	if o.status != ProofSent {
		return errs.NewPreconditionFailedError("status is proof_sent")
	}
	if o.reminderSentAt != nil {
		return errs.NewPreconditionFailedError("reminder not sent yet")
	}
	if o.proofSentAt == nil || now.Before(o.proofSentAt.Add(ReminderDelay)) {
		return errs.NewPreconditionFailedError("reminder delay has passed")
	}

	o.reminderSentAt = &now
	o.record(EventPaymentReminder, now, nil, o.sellerID)
	return nil
}

// MarkReviewedBy sets the review flag of the caller's side. It fails with
// errs.ErrAlreadyReviewed when that side already reviewed.
func (o *Order) MarkReviewedBy(caller kernel.UserID) error {
	if o.status != Delivered {
		return errs.ErrOrderNotDeliverable
	}
	switch {
	case o.IsBuyer(caller):
		if o.buyerReviewed {
			return errs.ErrAlreadyReviewed
		}
		o.buyerReviewed = true
	case o.IsSeller(caller):
		if o.sellerReviewed {
			return errs.ErrAlreadyReviewed
		}
		o.sellerReviewed = true
	default:
		return errs.NewPreconditionFailedError("caller is buyer or seller")
	}
	return nil
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(kind EventKind, now time.Time, payload map[string]any, recipients ...kernel.UserID) {
	o.events = append(o.events, Event{
		Kind:       kind,
		OrderID:    o.id,
		Recipients: recipients,
		Payload:    payload,
		OccurredAt: now,
	})
}

// stamp keeps an already set timestamp.
func stamp(current *time.Time, now time.Time) *time.Time {
	if current != nil {
		return current
	}
	return &now
}
