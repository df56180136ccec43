package cmd

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"orderflow/internal/adapters/out/lookupapi"
	"orderflow/internal/adapters/out/minioexport"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/jobs"
)

// CompositionRoot wires adapters into application use cases.
type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	logger  *slog.Logger

	orderStore   *orderrepo.GormOrderStore
	lookupClient *lookupapi.Client
	exporter     *minioexport.Exporter
}

// NewCompositionRoot builds all adapters. Connecting to the export sink may
// fail, so construction returns an error.
func NewCompositionRoot(
	ctx context.Context,
	configs Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
) (CompositionRoot, error) {
	exporter, err := minioexport.NewExporter(ctx, minioexport.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		UseSSL:    configs.MinioUseSSL,
		Bucket:    configs.MinioBucket,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		logger:  logger,
		orderStore: orderrepo.NewGormOrderStore(gormDB),
		lookupClient: lookupapi.NewClient(lookupapi.Config{
			BaseURL:    configs.LookupBaseURL,
			TimeoutSec: configs.LookupTimeoutSec,
			RetryMax:   configs.LookupRetryMax,
		}),
		exporter: exporter,
	}, nil
}

// CreateProcessOrdersCommandHandler builds the pipeline handler.
func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	classifier := services.NewOrderClassifier(c.lookupClient)
	return commands.NewProcessOrdersCommandHandler(c.orderStore, c.exporter, classifier, c.logger)
}

// CreateGetUserOrdersQueryHandler builds the order read-model handler.
func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

// CreateJobManager builds the scheduled-processing job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessOrdersCommandHandler(),
		c.configs.ProcessUserIDs,
		c.configs.ProcessSchedule,
		c.logger,
	)
}
