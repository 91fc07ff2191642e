package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"newsdesk/app/config"
	"newsdesk/app/driver/newsapi"
	"newsdesk/app/driver/postgres"
	"newsdesk/app/driver/workflow"
	"newsdesk/app/gateway"
	"newsdesk/app/port"
	"newsdesk/app/rest"
	"newsdesk/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	NewsAPIClient  *newsapi.Client
	WorkflowClient *workflow.Client

	// Usecases
	ArticleUsecase port.ArticleUsecase
	SummaryUsecase port.SummaryUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.NewsAPIClient, err = newsapi.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize article provider client: %w", err)
	}

	container.WorkflowClient, err = workflow.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize workflow client: %w", err)
	}

	// Repositories
	scoreRepository := postgres.NewScoreRepository(container.DB.Pool(), logger)
	summaryRepository := postgres.NewSummaryRepository(container.DB.Pool(), logger)

	// Gateways
	articleGateway := gateway.NewArticleGateway(container.NewsAPIClient, logger)
	workflowGateway := gateway.NewWorkflowGateway(container.WorkflowClient, logger)

	// Usecases
	container.ArticleUsecase = usecase.NewArticleUseCase(articleGateway, scoreRepository, logger)
	container.SummaryUsecase = usecase.NewSummaryUseCase(workflowGateway, scoreRepository, summaryRepository, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		ArticleUsecase: c.ArticleUsecase,
		SummaryUsecase: c.SummaryUsecase,
		Database:       c.DB,
		EnableDebug:    c.Config.LogLevel == "debug",
		EnableMetrics:  c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
