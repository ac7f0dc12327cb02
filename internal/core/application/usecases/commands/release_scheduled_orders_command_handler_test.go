package commands_test

import (
	"testing"
	"time"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseScheduledOrdersCommandHandler_Handle_ReleasesDueOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReleaseScheduledOrdersCommand()

	first := testOrder(t)
	first.Schedule(time.Now().UTC().Add(-time.Minute))
	second := testOrder(t)
	second.Schedule(time.Now().UTC().Add(-time.Hour))

	orderRepo := new(MockOrderRepository)
	eventLog := new(MockEventLog)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllScheduledDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	uow.On("EventLog").Return(eventLog).Twice()
	eventLog.On("Append", ctx, mock.AnythingOfType("kernel.UUID"), commands.EventScheduleReleased, mock.Anything).
		Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseScheduledOrdersCommandHandler(factory, discardLogger())
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, released)
	assert.False(t, first.IsScheduled())
	assert.False(t, second.IsScheduled())
	orderRepo.AssertExpectations(t)
	eventLog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseScheduledOrdersCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReleaseScheduledOrdersCommand()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllScheduledDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*order.Order{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseScheduledOrdersCommandHandler(factory, discardLogger())
	released, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, released)
	uow.AssertNotCalled(t, "Commit")
	orderRepo.AssertNotCalled(t, "Update")
}
