package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// SendPaymentRemindersCommandHandler nudges sellers who have not confirmed a
// payment order.ReminderDelay after the proof. Each order gets at most one
// reminder; it is recorded with the same conditional write as transitions.
type SendPaymentRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	dispatcher EventDispatcher
}

func NewSendPaymentRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
	dispatcher EventDispatcher,
) SendPaymentRemindersCommandHandler {
	return SendPaymentRemindersCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		dispatcher: dispatcher,
	}
}

func (h *SendPaymentRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendPaymentRemindersCommand,
) (ScanReport, error) {
	if err := cmd.Validate(); err != nil {
		return ScanReport{}, err
	}

	now := h.clock.Now()
	due, err := h.uowFactory.Create().OrderRepository().GetDueForReminder(ctx, now.Add(-order.ReminderDelay), cmd.BatchSize())
	if err != nil {
		return ScanReport{}, err
	}

	report := ScanReport{Scanned: len(due)}
	for _, o := range due {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.record(o.ID(), h.remind(ctx, o, now))
	}

	return report, nil
}

func (h *SendPaymentRemindersCommandHandler) remind(ctx context.Context, o *order.Order, now time.Time) error {
	if err := o.SendPaymentReminder(now); err != nil {
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
