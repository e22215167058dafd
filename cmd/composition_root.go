package cmd

import (
	"log/slog"

	httpadapter "github.com/Gmpatem/campus-cart-v2/internal/adapters/in/http"
	"github.com/Gmpatem/campus-cart-v2/internal/adapters/out/notify"
	"github.com/Gmpatem/campus-cart-v2/internal/adapters/out/postgres"
	"github.com/Gmpatem/campus-cart-v2/internal/core/application/usecases/commands"
	"github.com/Gmpatem/campus-cart-v2/internal/core/application/usecases/queries"
	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/services"
	"github.com/Gmpatem/campus-cart-v2/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	builder    services.OrderBuilder
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	builder, err := services.NewOrderBuilder(services.DefaultFeeSchedule())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		builder:    builder,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateProcessSubmissionCommandHandler() commands.ProcessSubmissionCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessSubmissionCommandHandler(f, c.builder)
}

func (c *CompositionRoot) CreateGetDailyDispatchQueryHandler() queries.GetDailyDispatchQueryHandler {
	return queries.NewGetDailyDispatchQueryHandler(c.gormDB, services.NewDailyAggregator(c.builder))
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateProcessSubmissionCommandHandler(),
		c.CreateGetDailyDispatchQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	dispatchJob := jobs.NewDailyDispatchJob(
		c.CreateGetDailyDispatchQueryHandler(),
		notify.NewSlogDispatchNotifier(c.logger),
		c.config.DispatchCronSpec,
		c.logger,
	)
	return jobs.NewJobManager(dispatchJob)
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}
