package cmd

import (
	"log/slog"

	"github.com/wael7705/movo-project/internal/adapters/out/postgres"
	"github.com/wael7705/movo-project/internal/adapters/out/redispub"
	"github.com/wael7705/movo-project/internal/adapters/out/scheduling"
	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"
	"github.com/wael7705/movo-project/internal/core/application/usecases/queries"
	"github.com/wael7705/movo-project/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	scheduler  ports.Scheduler
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  redispub.NewRedisEventPublisher(redisClient),
		scheduler:  scheduling.NewTimerScheduler(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateDemoOrderCommandHandler() commands.CreateDemoOrderCommandHandler {
	var f commands.DemoOrderUoWFactory = FuncDemoOrderUoWFactory(func() commands.DemoOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDemoOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCaptainCommandHandler() commands.AssignCaptainCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCaptainCommandHandler(f, c.publisher, c.scheduler, c.logger)
}

func (c *CompositionRoot) CreateReleaseScheduledOrdersCommandHandler() commands.ReleaseScheduledOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseScheduledOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateBroadcastCaptainPositionsCommandHandler() commands.BroadcastCaptainPositionsCommandHandler {
	var f commands.CaptainUoWFactory = FuncCaptainUoWFactory(func() commands.CaptainUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBroadcastCaptainPositionsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetOrderCardsQueryHandler() queries.GetOrderCardsQueryHandler {
	return queries.NewGetOrderCardsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderCountsQueryHandler() queries.GetOrderCountsQueryHandler {
	return queries.NewGetOrderCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchCandidatesQueryHandler() queries.GetDispatchCandidatesQueryHandler {
	return queries.NewGetDispatchCandidatesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncDemoOrderUoWFactory func() commands.DemoOrderUoW

func (f FuncDemoOrderUoWFactory) Create() commands.DemoOrderUoW {
	return f()
}

type FuncCaptainUoWFactory func() commands.CaptainUoW

func (f FuncCaptainUoWFactory) Create() commands.CaptainUoW {
	return f()
}
