package order

import (
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

// Proof is the buyer's evidence of payment. The screenshot is an opaque
// reference to externally hosted media.
type Proof struct {
	screenshotRef  string
	transactionRef string
	submittedAt    time.Time
}

func NewProof(screenshotRef, transactionRef string, submittedAt time.Time) (Proof, error) {
	p := Proof{
		screenshotRef:  strings.TrimSpace(screenshotRef),
		transactionRef: strings.TrimSpace(transactionRef),
		submittedAt:    submittedAt,
	}
	if p.transactionRef == "" {
		return Proof{}, errs.NewPreconditionFailedError("proof has a transaction reference")
	}
	if p.screenshotRef == "" {
		return Proof{}, errs.NewPreconditionFailedError("proof has a screenshot reference")
	}
	return p, nil
}

func (p Proof) ScreenshotRef() string  { return p.screenshotRef }
func (p Proof) TransactionRef() string { return p.transactionRef }
func (p Proof) SubmittedAt() time.Time { return p.submittedAt }
