package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spendlens/internal/config"
	"spendlens/internal/handlers"
	"spendlens/internal/llm"
	"spendlens/internal/middleware"
	"spendlens/internal/parser"
	"spendlens/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig(), logger, metrics)

	gateway := llm.NewAnthropicClient(cfg)

	categorizer := services.NewCategorizationService(
		gateway, breaker, metrics, logger,
		cfg.Pipeline.BatchSize, cfg.Pipeline.CategorizeMaxTokens)
	aggregator := services.NewAggregationService(cfg.Pipeline.TopMerchantsPerCategory)
	insights := services.NewInsightsService(
		gateway, breaker, metrics, logger, cfg.Pipeline.InsightsMaxTokens)
	analysis := services.NewAnalysisService(
		parser.NewCSVParser(),
		services.NewFlowClassifier(),
		services.NewNormalizer(cfg.Pipeline.MaxLineItems, logger),
		categorizer,
		aggregator,
		insights,
		metrics,
		logger,
	)
	review := services.NewReviewService(
		gateway, breaker, metrics, logger, cfg.Pipeline.ReviewMaxTokens)

	transactionsHandler := handlers.NewTransactionsHandler(analysis)
	reviewHandler := handlers.NewReviewHandler(review)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(
		cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/transactions/upload", transactionsHandler.Upload)
	api.POST("/transactions/regenerate-insights", transactionsHandler.RegenerateInsights)
	api.POST("/review", reviewHandler.Review)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
