package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const DefaultScanBatchSize = 100

var ErrEscalateOverdueOrdersCommandIsNotConstructed = errors.New(
	"EscalateOverdueOrdersCommand must be created via NewEscalateOverdueOrdersCommand constructor",
)

// EscalateOverdueOrdersCommand is one scan of the escalation scheduler.
// batchSize caps how many overdue orders a single scan handles; the rest
// are picked up by the next scan.
type EscalateOverdueOrdersCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewEscalateOverdueOrdersCommand(batchSize int) (EscalateOverdueOrdersCommand, error) {
	if batchSize <= 0 {
		return EscalateOverdueOrdersCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return EscalateOverdueOrdersCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EscalateOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrEscalateOverdueOrdersCommandIsNotConstructed)
}

func (c EscalateOverdueOrdersCommand) BatchSize() int {
	return c.batchSize
}
