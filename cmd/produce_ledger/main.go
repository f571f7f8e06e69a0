package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/produce_ledger/cmd/docs"
	"github.com/SscSPs/produce_ledger/internal/cache"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/core/services"
	"github.com/SscSPs/produce_ledger/internal/handlers"
	"github.com/SscSPs/produce_ledger/internal/middleware"
	"github.com/SscSPs/produce_ledger/internal/platform/config"
	"github.com/SscSPs/produce_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/produce_ledger/internal/repositories/memory"
	"github.com/SscSPs/produce_ledger/internal/scheduler"
	"github.com/SscSPs/produce_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// @title Produce Ledger API
// @version 1.0
// @description Sales, stock and receivables ledger for a wholesale produce stall.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaults := domain.SaleDefaults{Commodity: cfg.DefaultCommodity, Unit: cfg.DefaultUnit}
	seed := domain.DefaultSeed(defaults, cfg.DailyTarget.String())

	repos, err := openStore(ctx, cfg, defaults, seed, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repos.Schema.Close()

	if err := initializeWithRetry(ctx, repos.Schema, cfg.InitRetryAttempts, cfg.InitRetryDelay, logger); err != nil {
		logger.Error("Failed to initialize store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, summaryCache := openSummaryCache(ctx, cfg, logger)
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing Redis client", slog.String("error", cerr.Error()))
			}
		}()
	}

	container := services.NewServiceContainer(repos, summaryCache, services.ContainerConfig{
		Defaults:    defaults,
		DailyTarget: cfg.DailyTarget,
	})

	var carryOver *scheduler.Scheduler
	if cfg.CarryOverEnabled {
		carryOver = scheduler.NewScheduler(container.Inventory, cfg.CarryOverSchedule, time.Now, logger)
		if err := carryOver.Start(); err != nil {
			logger.Error("Failed to start carry-over scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, container, middleware.RateLimit(rateLimiter))
	setupSwaggerRoutes(r, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
	if carryOver != nil {
		carryOver.Stop()
	}
	logger.Info("Server stopped")
}

// openStore returns the PostgreSQL repositories when PGSQL_URL is set and the
// in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config, defaults domain.SaleDefaults, seed domain.SeedData, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("Using in-memory store")
		return memory.NewStore(defaults, seed).Provider(), nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool, cfg.DatabaseURL, defaults, seed), nil
}

func initializeWithRetry(ctx context.Context, schema portsrepo.SchemaStore, attempts int, delay time.Duration, logger *slog.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = schema.Initialize(ctx); err == nil {
			return nil
		}
		logger.Warn("Store initialization failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.String("error", err.Error()))
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

// openSummaryCache connects to Redis when configured. An unreachable server
// disables caching rather than failing startup.
func openSummaryCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, portsrepo.SummaryCache) {
	if cfg.RedisAddr == "" {
		return nil, cache.NoopSummaryCache{}
	}

	client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	summaryCache := cache.NewRedisSummaryCache(client, cfg.SummaryCacheTTL)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := summaryCache.Ping(pingCtx); err != nil {
		logger.Warn("Redis unavailable, summary cache disabled", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		_ = client.Close()
		return nil, cache.NoopSummaryCache{}
	}
	logger.Info("Summary cache connected", slog.String("addr", cfg.RedisAddr))
	return client, summaryCache
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Content-Disposition"}
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
