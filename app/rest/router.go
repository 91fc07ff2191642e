package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk/app/port"
	"newsdesk/app/rest/handlers"
	custommw "newsdesk/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	ArticleUsecase port.ArticleUsecase
	SummaryUsecase port.SummaryUsecase
	Database       handlers.HealthChecker
	EnableDebug    bool
	EnableMetrics  bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	articleHandler := handlers.NewArticleHandler(config.ArticleUsecase, config.Logger)
	summaryHandler := handlers.NewSummaryHandler(config.SummaryUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	if config.EnableMetrics {
		e.Use(custommw.RequestMetrics())
	}

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Article endpoints
	v1.GET("/articles", articleHandler.ListArticles)
	v1.GET("/articles/:id", articleHandler.GetArticle)
	v1.POST("/articles/:id/selection", articleHandler.RecordSelection)

	// Summarization endpoints
	v1.POST("/process", summaryHandler.Process)
	v1.GET("/summaries", summaryHandler.ListSummaries)
	v1.DELETE("/summaries/:id", summaryHandler.DeleteSummary)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
