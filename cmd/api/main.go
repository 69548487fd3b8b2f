package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/config"
	"github.com/GTDGit/gtd_bi/internal/database"
	"github.com/GTDGit/gtd_bi/internal/handler"
	"github.com/GTDGit/gtd_bi/internal/middleware"
	"github.com/GTDGit/gtd_bi/internal/ratelimit"
	"github.com/GTDGit/gtd_bi/internal/service"
	"github.com/GTDGit/gtd_bi/internal/worker"
)

// main is the entrypoint of the BI report API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting bi report api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := database.RunMigrations(db.DB, cfg.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4. Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. Rate limiter: shared through Redis when configured
	var limiter ratelimit.Limiter
	if cfg.Redis.Enabled() {
		redisClient, err := ratelimit.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Error().Err(err).Msg("redis connection failed")
			fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window)
		log.Info().Msg("redis connected successfully")
	} else {
		limiter = ratelimit.NewMemoryLimiter(ctx, cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.Window)
		log.Warn().Msg("REDIS_HOST not set, rate limiting is per process")
	}

	// 6. Initialize services
	formatter := analytics.NewFormatter(cfg.Report.Currency)
	salesSvc := service.NewSalesReportService(db, formatter)
	learningSvc := service.NewLearningReportService(db, formatter)

	// 6a. Scheduled snapshots
	if cfg.Report.ExportInterval > 0 {
		go worker.NewSnapshotWorker(salesSvc, learningSvc, cfg.Report.ExportDir, cfg.Report.ExportInterval, cfg.Report.Timeout).Start(ctx)
	}

	// 7. Initialize handlers
	handlers := &Handlers{
		Health: handler.NewHealthHandler(db),
		Report: handler.NewReportHandler(salesSvc, learningSvc, cfg.Report.Timeout),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, middleware.RateLimitMiddleware(limiter))

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health *handler.HealthHandler
	Report *handler.ReportHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, rateLimit gin.HandlerFunc) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	reports := router.Group("/v1/reports")
	reports.Use(rateLimit)
	{
		reports.GET("/sales", handlers.Report.GetSalesReport)
		reports.GET("/sales/regions", handlers.Report.GetSalesRegions)
		reports.GET("/learning", handlers.Report.GetLearningReport)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
