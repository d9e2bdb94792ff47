package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/jobs"
	"restaurant/internal/notifications"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	bus        *notifications.Bus
	clock      systemClock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	retention := time.Duration(config.NotificationRetentionMinutes) * time.Minute

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:        notifications.NewBus(config.NotificationCapacity, retention),
	}
}

func (c *CompositionRoot) Bus() *notifications.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		services.NewTokenGenerator(),
		services.NewCourierAssigner(),
		c.bus,
		c.clock,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.bus, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReassignCourierCommandHandler() commands.ReassignCourierCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignCourierCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateNotifyArrivalCommandHandler() commands.NotifyArrivalCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyArrivalCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKitchenQueueQueryHandler() queries.GetKitchenQueueQueryHandler {
	return queries.NewGetKitchenQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierDeliveriesQueryHandler() queries.GetCourierDeliveriesQueryHandler {
	return queries.NewGetCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.bus, c.config.PurgeSchedule, logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// systemClock is the production clock; handlers stamp lifecycle
// timestamps through it.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
