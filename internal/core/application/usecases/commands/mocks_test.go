package commands_test

import (
	"context"
	"time"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"
	"github.com/wael7705/movo-project/internal/core/domain/model/captain"
	"github.com/wael7705/movo-project/internal/core/domain/model/customer"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"
	"github.com/wael7705/movo-project/internal/core/domain/model/restaurant"
	"github.com/wael7705/movo-project/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllScheduledDue(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCaptainRepository struct{ mock.Mock }

func (m *MockCaptainRepository) Add(ctx context.Context, c *captain.Captain) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaptainRepository) Update(ctx context.Context, c *captain.Captain) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaptainRepository) Get(ctx context.Context, id kernel.UUID) (*captain.Captain, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*captain.Captain), args.Error(1)
}

func (m *MockCaptainRepository) GetAllAvailable(ctx context.Context, limit int) ([]*captain.Captain, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*captain.Captain), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetFirst(ctx context.Context) (*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetFirst(ctx context.Context) (*restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

type MockEventLog struct{ mock.Mock }

func (m *MockEventLog) Append(ctx context.Context, orderID kernel.UUID, eventType string, payload any) error {
	args := m.Called(ctx, orderID, eventType, payload)
	return args.Error(0)
}

func (m *MockEventLog) TryRecordIdempotencyKey(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CaptainRepository() ports.CaptainRepository {
	args := m.Called()
	return args.Get(0).(ports.CaptainRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) EventLog() ports.EventLog {
	args := m.Called()
	return args.Get(0).(ports.EventLog)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCancelOrderUoWFactory struct{ mock.Mock }

func (m *MockCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelOrderUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockDemoOrderUoWFactory struct{ mock.Mock }

func (m *MockDemoOrderUoWFactory) Create() commands.DemoOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DemoOrderUoW)
}

type MockCaptainUoWFactory struct{ mock.Mock }

func (m *MockCaptainUoWFactory) Create() commands.CaptainUoW {
	args := m.Called()
	return args.Get(0).(commands.CaptainUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}

// fakeScheduler captures scheduled functions so tests can fire them
// synchronously.
type fakeScheduler struct {
	delays []time.Duration
	fns    []func()
}

func (s *fakeScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.fns = append(s.fns, fn)
}

func (s *fakeScheduler) fireAll() {
	for _, fn := range s.fns {
		fn()
	}
	s.fns = nil
}
