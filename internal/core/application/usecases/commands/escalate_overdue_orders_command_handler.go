package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// EscalateOverdueOrdersCommandHandler disputes every order whose auto-dispute
// deadline has passed while it sat in proof_sent or confirmed.
//
// Each order is escalated in its own unit of work with a conditional write,
// so one failing order never blocks the others and an order changed by a
// buyer or seller in the meantime is simply skipped. Running the scan twice
// is harmless: escalated orders are terminal and fail the guard.
type EscalateOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	dispatcher EventDispatcher
}

func NewEscalateOverdueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) EscalateOverdueOrdersCommandHandler {
	return EscalateOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		dispatcher: dispatcher,
	}
}

// Handle returns an error only when the scan query itself fails.
func (h *EscalateOverdueOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd EscalateOverdueOrdersCommand,
) (ScanReport, error) {
	if err := cmd.Validate(); err != nil {
		return ScanReport{}, err
	}

	now := h.clock.Now()
	overdue, err := h.uowFactory.Create().OrderRepository().GetOverdue(ctx, now, cmd.BatchSize())
	if err != nil {
		return ScanReport{}, err
	}

	report := ScanReport{Scanned: len(overdue)}
	for _, o := range overdue {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.record(o.ID(), h.escalate(ctx, o, now))
	}

	return report, nil
}

func (h *EscalateOverdueOrdersCommandHandler) escalate(ctx context.Context, o *order.Order, now time.Time) error {
	if err := o.Escalate(now); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, uow.CollectEvents())
	return nil
}
