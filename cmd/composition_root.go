package cmd

import (
	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/status"
	"shop/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	catalog    status.Catalog
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, catalog status.Catalog, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		catalog:    catalog,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, catalog),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateAddOpinionCommandHandler() commands.AddOpinionCommandHandler {
	var f commands.OpinionUoWFactory = FuncOpinionUoWFactory(func() commands.OpinionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOpinionCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetStatusesQueryHandler() queries.GetStatusesQueryHandler {
	return queries.NewGetStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleOrdersQueryHandler() queries.GetStaleOrdersQueryHandler {
	return queries.NewGetStaleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAddOpinionCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetStatusesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateStaleOrderJob() *jobs.StaleOrderJob {
	finder := c.CreateGetStaleOrdersQueryHandler()
	canceller := c.CreateChangeOrderStatusCommandHandler()
	return jobs.NewStaleOrderJob(
		finder,
		&canceller,
		c.config.StaleOrderTTL,
		c.config.StaleOrderSchedule,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOpinionUoWFactory func() commands.OpinionUoW

func (f FuncOpinionUoWFactory) Create() commands.OpinionUoW {
	return f()
}
