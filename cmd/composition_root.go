package cmd

import (
	"log/slog"

	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/eventbus"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	gate       services.DispatchGate
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		clock:      clock.NewSystem(),
		gate:       services.NewDispatchGate(),
		logger:     logger,
	}
}

// NewEventPublisher picks the Kafka publisher when brokers are configured and
// the log publisher otherwise. closeFn releases the publisher's resources.
func NewEventPublisher(cfg KafkaConfig, logger *slog.Logger) (ports.EventPublisher, func() error, error) {
	if len(cfg.Brokers) == 0 {
		return eventbus.NewLogPublisher(logger), func() error { return nil }, nil
	}

	publisher, err := eventbus.NewKafkaPublisher(eventbus.KafkaConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpsertMachineFamilyCommandHandler() commands.UpsertMachineFamilyCommandHandler {
	return commands.NewUpsertMachineFamilyCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMachineFamilyCommandHandler() commands.DeleteMachineFamilyCommandHandler {
	return commands.NewDeleteMachineFamilyCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateLinkDefaultAccessoryCommandHandler() commands.LinkDefaultAccessoryCommandHandler {
	return commands.NewLinkDefaultAccessoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUnlinkDefaultAccessoryCommandHandler() commands.UnlinkDefaultAccessoryCommandHandler {
	return commands.NewUnlinkDefaultAccessoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpsertAccessoryCommandHandler() commands.UpsertAccessoryCommandHandler {
	return commands.NewUpsertAccessoryCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAccessoryCommandHandler() commands.DeleteAccessoryCommandHandler {
	return commands.NewDeleteAccessoryCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateRecordStockMovementCommandHandler() commands.RecordStockMovementCommandHandler {
	return commands.NewRecordStockMovementCommandHandler(c.inventoryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSeedProductionStepsCommandHandler() commands.SeedProductionStepsCommandHandler {
	return commands.NewSeedProductionStepsCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.clock, c.cfg.Orders.NumberPrefix)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.fullUoWFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLineItemCommandHandler() commands.UpdateLineItemCommandHandler {
	return commands.NewUpdateLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceLineItemCommandHandler() commands.AdvanceLineItemCommandHandler {
	return commands.NewAdvanceLineItemCommandHandler(c.orderUoWFactory(), c.gate, c.clock)
}

func (c *CompositionRoot) CreateAddCustomAccessoryCommandHandler() commands.AddCustomAccessoryCommandHandler {
	return commands.NewAddCustomAccessoryCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeCustomAccessoryQuantityCommandHandler() commands.ChangeCustomAccessoryQuantityCommandHandler {
	return commands.NewChangeCustomAccessoryQuantityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemAccessoryCommandHandler() commands.UpdateItemAccessoryCommandHandler {
	return commands.NewUpdateItemAccessoryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetDispatchReadinessQueryHandler() queries.GetDispatchReadinessQueryHandler {
	return queries.NewGetDispatchReadinessQueryHandler(c.uowFactory, c.gate)
}

func (c *CompositionRoot) CreateGetLowStockAccessoriesQueryHandler() queries.GetLowStockAccessoriesQueryHandler {
	return queries.NewGetLowStockAccessoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDelayedOrdersQueryHandler() queries.GetDelayedOrdersQueryHandler {
	return queries.NewGetDelayedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAuditQueryHandler() queries.GetOrderAuditQueryHandler {
	return queries.NewGetOrderAuditQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockMovementsQueryHandler() queries.GetStockMovementsQueryHandler {
	return queries.NewGetStockMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateGetDispatchReadinessQueryHandler(),
		c.CreateGetLowStockAccessoriesQueryHandler(),
		c.CreateGetDelayedOrdersQueryHandler(),
		c.CreateGetOrderAuditQueryHandler(),
		c.CreateGetStockMovementsQueryHandler(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetLowStockAccessoriesQueryHandler(),
		c.CreateGetDelayedOrdersQueryHandler(),
		c.clock,
		jobs.Schedules{
			LowStock:      c.cfg.Jobs.LowStockSchedule,
			DelayedOrders: c.cfg.Jobs.DelayedOrdersSchedule,
		},
		c.logger,
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
