package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitProofCommandIsNotConstructed = errors.New(
	"SubmitProofCommand must be created via NewSubmitProofCommand constructor",
)

// SubmitProofCommand is the buyer uploading evidence of a mobile money transfer.
// Empty references are rejected by the order itself, as a failed guard.
type SubmitProofCommand struct {
	orderID        kernel.UUID
	callerID       kernel.UserID
	screenshotRef  string
	transactionRef string

	guard guard.ConstructorGuard
}

func NewSubmitProofCommand(
	orderID kernel.UUID,
	callerID kernel.UserID,
	screenshotRef, transactionRef string,
) (SubmitProofCommand, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return SubmitProofCommand{}, err
	}

	return SubmitProofCommand{
		orderID:        orderID,
		callerID:       callerID,
		screenshotRef:  screenshotRef,
		transactionRef: transactionRef,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProofCommandIsNotConstructed)
}

func (c SubmitProofCommand) OrderID() kernel.UUID    { return c.orderID }
func (c SubmitProofCommand) CallerID() kernel.UserID { return c.callerID }
func (c SubmitProofCommand) ScreenshotRef() string   { return c.screenshotRef }
func (c SubmitProofCommand) TransactionRef() string  { return c.transactionRef }
