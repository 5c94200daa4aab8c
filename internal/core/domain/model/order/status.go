package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Initiated ──> ProofSent ──> Confirmed ──> Delivered
//	    │             │              │
//	    │             └──────┬───────┘
//	    │                    v
//	    ├──────────────> Disputed   (manual from any non-terminal state,
//	    │                            automatic from ProofSent/Confirmed)
//	    v
//	Cancelled
//
// Delivered, Disputed and Cancelled are terminal: every transition from
// them fails with a PreconditionFailedError.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Initiated is the state of a freshly created order, before any payment proof.
	Initiated

	// ProofSent means the buyer uploaded a payment proof. The auto-dispute
	// deadline starts here.
	ProofSent

	// Confirmed means the seller acknowledged receiving the money.
	Confirmed

	// Delivered means the buyer confirmed the physical handover. Reviews
	// are only accepted from here.
	Delivered

	// Disputed is reached manually or when the deadline passes.
	Disputed

	// Cancelled is only reachable from Initiated.
	Cancelled
)

var statusNames = map[Status]string{
	Initiated: "initiated",
	ProofSent: "proof_sent",
	Confirmed: "confirmed",
	Delivered: "delivered",
	Disputed:  "disputed",
	Cancelled: "cancelled",
}

// ParseStatus maps the persisted name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Disputed || s == Cancelled
}

// IsEscalatable reports whether the auto-dispute timer applies to s.
func (s Status) IsEscalatable() bool {
	return s == ProofSent || s == Confirmed
}

func (s Status) SubmitProof() (Status, error) {
	if err := s.expect("submit proof", Initiated); err != nil {
		return Unknown, err
	}
	return ProofSent, nil
}

func (s Status) Cancel() (Status, error) {
	if err := s.expect("cancel", Initiated); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

func (s Status) ConfirmReceipt() (Status, error) {
	if err := s.expect("confirm receipt", ProofSent); err != nil {
		return Unknown, err
	}
	return Confirmed, nil
}

func (s Status) ConfirmDelivery() (Status, error) {
	if err := s.expect("confirm delivery", Confirmed); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}

// Dispute is the manual dispute edge, open from every non-terminal state.
func (s Status) Dispute() (Status, error) {
	if err := s.expect("dispute", Initiated, ProofSent, Confirmed); err != nil {
		return Unknown, err
	}
	return Disputed, nil
}

// Escalate is the timeout edge used by the escalation scheduler.
func (s Status) Escalate() (Status, error) {
	if err := s.expect("escalate", ProofSent, Confirmed); err != nil {
		return Unknown, err
	}
	return Disputed, nil
}

func (s Status) expect(action string, allowed ...Status) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return errs.NewPreconditionFailedErrorWithCause(
		"status allows "+action,
		fmt.Errorf("cannot %s an order in status %s", action, s),
	)
}
