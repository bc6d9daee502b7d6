package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "crown/internal/adapters/in/http"
	"crown/internal/adapters/out/memory"
	"crown/internal/adapters/out/postgres"
	"crown/internal/core/application/usecases/commands"
	"crown/internal/core/application/usecases/queries"
	"crown/internal/core/ports"
	"crown/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	repository ports.DeliveryRepository
}

// NewCompositionRoot wires the application on top of PostgreSQL.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	factory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return CompositionRoot{
		configs:    configs,
		logger:     logger,
		uowFactory: factory,
		repository: factory.Create().DeliveryRepository(),
	}
}

// NewInMemoryCompositionRoot wires the application on top of process memory.
func NewInMemoryCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	repo := memory.NewDeliveryRepository()
	return CompositionRoot{
		configs:    configs,
		logger:     logger,
		uowFactory: memory.NewUnitOfWorkFactory(repo),
		repository: repo,
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.EndpointConfig{
			ApplicationName:   c.configs.AppName,
			EntityName:        "delivery",
			EnableTranslation: c.configs.AppEnableTranslation,
			DefaultPageSize:   c.configs.PageDefaultSize,
			MaxPageSize:       c.configs.PageMaxSize,
		},
		c.logger,
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateUpdateDeliveryCommandHandler(),
		c.CreateDeleteDeliveryCommandHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateListDeliveriesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	router, err := httpadapter.NewRouter(c.CreateServer(), c.logger)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return router, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListDeliveriesQueryHandler(), c.configs.StatsSchedule, c.logger)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
