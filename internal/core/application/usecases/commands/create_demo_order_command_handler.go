package commands

import (
	"context"
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"
	"github.com/wael7705/movo-project/internal/pkg/errs"
)

// ErrNoSeedData is returned when a demo order cannot be created because no
// customer or restaurant is registered yet.
var ErrNoSeedData = errors.New("no customer or restaurant registered")

// demoEconomics are the fixed figures every demo order is created with.
var demoEconomics = order.Economics{
	DistanceMeters:       1500,
	DeliveryFee:          5.00,
	TotalPriceCustomer:   25.00,
	TotalPriceRestaurant: 20.00,
}

// CreateDemoOrderCommandHandler seeds a pending order for manual testing of
// the lifecycle and dispatch flows. It picks the oldest registered customer
// and restaurant and creates an order with fixed economics.
type CreateDemoOrderCommandHandler struct {
	uowFactory DemoOrderUoWFactory
}

// NewCreateDemoOrderCommandHandler creates a handler for demo-order seeding.
func NewCreateDemoOrderCommandHandler(uowFactory DemoOrderUoWFactory) CreateDemoOrderCommandHandler {
	return CreateDemoOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the demo-order command. Fails with ErrNoSeedData when
// no customer or restaurant exists.
func (h CreateDemoOrderCommandHandler) Handle(ctx context.Context, command CreateDemoOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.CustomerRepository().GetFirst(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoSeedData
	}
	if err != nil {
		return nil, err
	}

	pickup, err := uow.RestaurantRepository().GetFirst(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoSeedData
	}
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), owner.ID(), pickup.ID(), demoEconomics)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.EventLog().Append(ctx, aggregate.ID(), EventOrderCreated, map[string]any{
		"customer_id":   owner.ID().String(),
		"restaurant_id": pickup.ID().String(),
		"demo":          true,
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
