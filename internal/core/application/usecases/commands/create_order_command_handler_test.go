package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, buyer, seller string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), mustUser(t, buyer), mustUser(t, seller),
		testProduct(t), testPayment(t), 1000, order.DeliveryTypeDelivery)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "buyer-1", "seller-1")
	events := []order.Event{{Kind: order.EventOrderInitiated}}

	var added *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	dispatcher := new(MockEventDispatcher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("CollectEvents").Return(events).Once(),
		dispatcher.On("Dispatch", ctx, events).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), dispatcher, decimal.NewFromInt(5))
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, order.Initiated, added.Status())
	assert.Equal(t, int64(11000), added.Fees().TotalAmount())
	assert.Equal(t, int64(550), added.Fees().PlatformFee())
	assert.Equal(t, int64(10450), added.Fees().SellerReceives())
	assert.Equal(t, t0, added.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_FreezesConfiguredFee(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "buyer-1", "seller-1")

	var added *order.Order
	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.Anything).Run(func(args mock.Arguments) {
		added = args.Get(1).(*order.Order)
	}).Return(nil)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("CollectEvents").Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	dispatcher := new(MockEventDispatcher)
	dispatcher.On("Dispatch", ctx, mock.Anything)

	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), dispatcher, decimal.Zero)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, int64(0), added.Fees().PlatformFee())
	assert.Equal(t, int64(11000), added.Fees().SellerReceives())
	assert.True(t, added.Fees().FeePercent().IsZero())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), new(MockEventDispatcher), decimal.Zero)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_SelfPurchase(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), new(MockEventDispatcher), decimal.Zero)

	err := h.Handle(t.Context(), newCreateOrderCommand(t, "same", "same"))

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), new(MockEventDispatcher), decimal.Zero)
	err := h.Handle(ctx, newCreateOrderCommand(t, "b", "s"))

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dispatcher := new(MockEventDispatcher)

	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), dispatcher, decimal.Zero)
	err := h.Handle(ctx, newCreateOrderCommand(t, "b", "s"))

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dispatcher := new(MockEventDispatcher)

	h := commands.NewCreateOrderCommandHandler(factory, clock.NewFixed(t0), dispatcher, decimal.Zero)
	err := h.Handle(ctx, newCreateOrderCommand(t, "b", "s"))

	require.Error(t, err)
	uow.AssertExpectations(t)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
