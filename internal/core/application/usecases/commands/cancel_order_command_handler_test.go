package commands_test

import (
	"log/slog"
	"testing"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"
	"github.com/wael7705/movo-project/internal/core/domain/model/customer"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"
	"github.com/wael7705/movo-project/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	owner, err := customer.NewCustomer(aggregate.CustomerID(), "Lina")
	require.NoError(t, err)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	eventLog := new(MockEventLog)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, aggregate.CustomerID()).Return(owner, nil).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("EventLog").Return(eventLog).Once(),
		eventLog.On("Append", ctx, aggregate.ID(), commands.EventOrderCancelled, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.CurrentStatus())
	assert.Equal(t, 1, owner.CancelledCount())
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_MissingCustomerIsTolerated(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	eventLog := new(MockEventLog)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, aggregate.CustomerID()).
			Return(nil, errs.NewObjectNotFoundError("customerId", aggregate.CustomerID())).
			Once(),
		uow.On("EventLog").Return(eventLog).Once(),
		eventLog.On("Append", ctx, aggregate.ID(), commands.EventOrderCancelled, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	cancelled, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.CurrentStatus())
	customerRepo.AssertNotCalled(t, "Update")
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	require.NoError(t, aggregate.ChangeStatus(order.Delivered))
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestCancelOrderCommand_Validate(t *testing.T) {
	var cmd commands.CancelOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)

	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
}
