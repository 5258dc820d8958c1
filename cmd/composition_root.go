package cmd

import (
	"log/slog"

	httpapi "cashrun/internal/adapters/in/http"
	"cashrun/internal/adapters/out/postgres"
	"cashrun/internal/adapters/out/postgres/orderrepo"
	"cashrun/internal/core/application/usecases/commands"
	"cashrun/internal/core/application/usecases/queries"
	"cashrun/internal/core/domain/services"
	"cashrun/internal/core/ports"
	"cashrun/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    ports.Metrics
	profiles   ports.ProfileCache
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	metrics ports.Metrics,
	profiles ports.ProfileCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics,
		profiles:   profiles,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) atmUoWFactory() commands.AtmUoWFactory {
	return FuncAtmUoWFactory(func() commands.AtmUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateTransitionValidator() services.TransitionValidator {
	return services.NewTransitionValidator(orderrepo.NewGormTransitionGateway(c.gormDB), c.metrics)
}

func (c *CompositionRoot) CreateAssignAtmCommandHandler() commands.AssignAtmCommandHandler {
	return commands.NewAssignAtmCommandHandler(c.assignmentUoWFactory(), c.metrics, c.logger, c.config.AtmSampleLimit)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.CreateAssignAtmCommandHandler())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.CreateTransitionValidator())
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.CreateTransitionValidator(), c.logger)
}

func (c *CompositionRoot) CreateRegisterAtmCommandHandler() commands.RegisterAtmCommandHandler {
	return commands.NewRegisterAtmCommandHandler(c.atmUoWFactory())
}

func (c *CompositionRoot) CreateSetAtmStatusCommandHandler() commands.SetAtmStatusCommandHandler {
	return commands.NewSetAtmStatusCommandHandler(c.atmUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderViewQueryHandler() queries.GetOrderViewQueryHandler {
	return queries.NewGetOrderViewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveAtmsQueryHandler() queries.GetActiveAtmsQueryHandler {
	return queries.NewGetActiveAtmsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpapi.Server {
	return httpapi.NewServer(httpapi.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		AdvanceOrder: c.CreateAdvanceOrderCommandHandler(),
		AssignAtm:    c.CreateAssignAtmCommandHandler(),
		RegisterAtm:  c.CreateRegisterAtmCommandHandler(),
		SetAtmStatus: c.CreateSetAtmStatusCommandHandler(),
		OrderView:    c.CreateGetOrderViewQueryHandler(),
		OpenOrders:   c.CreateGetOpenOrdersQueryHandler(),
		ActiveAtms:   c.CreateGetActiveAtmsQueryHandler(),
		Profiles:     c.profiles,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expiry := jobs.NewPendingOrderExpiryJob(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.config.OrderExpirySchedule,
		c.config.OrderPendingTTL,
		c.config.OrderExpiryBatch,
		c.logger,
	)
	return jobs.NewJobManager(expiry)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAtmUoWFactory func() commands.AtmUoW

func (f FuncAtmUoWFactory) Create() commands.AtmUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
