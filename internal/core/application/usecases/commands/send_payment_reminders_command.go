package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSendPaymentRemindersCommandIsNotConstructed = errors.New(
	"SendPaymentRemindersCommand must be created via NewSendPaymentRemindersCommand constructor",
)

// SendPaymentRemindersCommand is one scan of the payment reminder job.
type SendPaymentRemindersCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewSendPaymentRemindersCommand(batchSize int) (SendPaymentRemindersCommand, error) {
	if batchSize <= 0 {
		return SendPaymentRemindersCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return SendPaymentRemindersCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SendPaymentRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendPaymentRemindersCommandIsNotConstructed)
}

func (c SendPaymentRemindersCommand) BatchSize() int {
	return c.batchSize
}
