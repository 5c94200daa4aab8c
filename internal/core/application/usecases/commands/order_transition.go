package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
)

// orderTransition runs one aggregate transition as a read-modify-write in a
// single unit of work. The write is conditional on the version that was read,
// so a concurrent transition makes it fail with errs.ErrConcurrentModification
// instead of overwriting the other outcome.
type orderTransition struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
	dispatcher EventDispatcher
}

func (t orderTransition) apply(
	ctx context.Context,
	orderID kernel.UUID,
	transition func(o *order.Order, now time.Time) error,
) error {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = transition(o, t.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	t.dispatcher.Dispatch(ctx, uow.CollectEvents())
	return nil
}
