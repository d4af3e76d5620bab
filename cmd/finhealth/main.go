package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finhealthai/finhealth-web-go/internal/config"
	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/handler"
	"github.com/finhealthai/finhealth-web-go/internal/infra/cache"
	"github.com/finhealthai/finhealth-web-go/internal/infra/client"
	"github.com/finhealthai/finhealth-web-go/internal/infra/observability"
	"github.com/finhealthai/finhealth-web-go/internal/infra/resilience"
	"github.com/finhealthai/finhealth-web-go/internal/render"
	"github.com/finhealthai/finhealth-web-go/internal/service"
	"github.com/finhealthai/finhealth-web-go/internal/workflow"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = godotenv.Load()

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("analysis_api_url", cfg.AnalysisAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.String("default_language", cfg.DefaultLanguage),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "finhealth-web")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	reportCache := cache.New[string](cfg.CacheTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("analysis")

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	analysisClient := client.NewAnalysisClient(httpClient, cfg.AnalysisAPIURL, cb, resilienceCfg)

	// --- Renderer ---
	renderer, err := render.New(reportCache, logger,
		func() { metrics.IncrCacheHit("report") },
		func() { metrics.IncrCacheMiss("report") },
	)
	if err != nil {
		logger.Fatal("failed to build renderer", zap.Error(err))
	}

	// --- Workflow ---
	defaultLang := domain.Language(cfg.DefaultLanguage)
	if !defaultLang.Valid() {
		logger.Warn("unsupported default language, falling back to English",
			zap.String("language", cfg.DefaultLanguage),
		)
		defaultLang = domain.LangEnglish
	}
	controller := workflow.New(defaultLang, logger)

	// --- Services ---
	analysisSvc := service.NewAnalysis(
		controller,
		analysisClient,
		analysisClient,
		renderer,
		metrics,
		logger,
	)

	// --- Router ---
	router := handler.NewRouter(analysisSvc, analysisClient, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
