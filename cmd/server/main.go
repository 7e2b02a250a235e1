package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/adapter/cache"
	"github.com/powerdash/powerdash/internal/adapter/http/fiber/handlers"
	"github.com/powerdash/powerdash/internal/adapter/http/fiber/middleware"
	"github.com/powerdash/powerdash/internal/adapter/queue"
	"github.com/powerdash/powerdash/internal/adapter/storage/local"
	"github.com/powerdash/powerdash/internal/adapter/storage/postgres"
	"github.com/powerdash/powerdash/internal/service/alert"
	"github.com/powerdash/powerdash/internal/service/anomaly"
	"github.com/powerdash/powerdash/internal/service/auth"
	"github.com/powerdash/powerdash/internal/service/export"
	"github.com/powerdash/powerdash/internal/service/kpi"
	"github.com/powerdash/powerdash/internal/service/meter"
	"github.com/powerdash/powerdash/internal/service/reading"
	"github.com/powerdash/powerdash/pkg/config"

	// Import metrics to register them
	_ "github.com/powerdash/powerdash/internal/observability/telemetry"
)

const (
	serviceName    = "powerdash"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting PowerDash",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 4. Initialize Redis Cache
	redisCache, err := cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	// 5. Initialize Message Queue (NATS)
	messageQueue, err := queue.NewNATSQueue(cfg.NATS.URL, cfg.NATS.MaxReconnects, cfg.NATS.ReconnectWait, logger)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer messageQueue.Close()

	// 6. Initialize File Store for reading images
	fileStore, err := local.NewFileStore(cfg.Upload.Dir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize file store", zap.Error(err))
	}

	// 7. Initialize Repositories
	companyRepo := postgres.NewCompanyRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)
	meterRepo := postgres.NewMeterRepository(db, logger)
	readingRepo := postgres.NewReadingRepository(db, logger)
	alertRepo := postgres.NewAlertRepository(db, logger)

	// 8. Initialize Services (Business Logic Layer)
	authService := auth.NewService(companyRepo, userRepo, redisCache, cfg.JWT.Secret, logger)
	meterService := meter.NewService(meterRepo, logger)
	anomalyDetector := anomaly.NewDetector(readingRepo, alertRepo, messageQueue, logger)
	readingService := reading.NewService(readingRepo, meterRepo, anomalyDetector, fileStore, messageQueue, logger)
	kpiService := kpi.NewService(meterRepo, readingRepo, alertRepo, logger)
	alertService := alert.NewService(alertRepo, logger)
	exportService := export.NewService(readingRepo, logger)

	// 9. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		if err := sqlDB.Ping(); err != nil {
			return c.Status(503).SendString("Database not ready")
		}
		if err := redisCache.Ping(); err != nil {
			return c.Status(503).SendString("Cache not ready")
		}
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("", middleware.AuthRequired(authService))

	// Meter routes
	meterHandler := handlers.NewMeterHandler(meterService, logger)
	protected.Get("/meters", meterHandler.List)
	protected.Post("/meters", meterHandler.Register)

	// Reading routes
	readingHandler := handlers.NewReadingHandler(readingService, logger)
	protected.Get("/readings", readingHandler.List)
	protected.Post("/readings", readingHandler.Record)

	// Dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(kpiService, logger)
	protected.Get("/dashboard", dashboardHandler.Stats)

	// Alert routes
	alertHandler := handlers.NewAlertHandler(alertService, logger)
	protected.Get("/alerts", alertHandler.List)
	protected.Post("/alerts/:id/acknowledge", alertHandler.Acknowledge)
	protected.Post("/alerts/:id/close", alertHandler.Close)

	// Export routes
	exportHandler := handlers.NewExportHandler(exportService, logger)
	protected.Get("/readings/export", exportHandler.Readings)

	// 10. Start Background Workers
	go startBackgroundWorkers(messageQueue, logger)

	// 11. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 12. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// startBackgroundWorkers consumes reading and alert events for async followups.
func startBackgroundWorkers(mq queue.MessageQueue, logger *zap.Logger) {
	logger.Info("Starting background workers")

	// Worker 1: notify supervisors about raised alerts
	mq.Subscribe(queue.SubjectAlertRaised, func(msg []byte) error {
		logger.Info("Dispatching alert notification", zap.ByteString("msg", msg))
		return nil
	})

	// Worker 2: audit trail for recorded readings
	mq.Subscribe(queue.SubjectReadingRecorded, func(msg []byte) error {
		logger.Info("Reading recorded", zap.ByteString("msg", msg))
		return nil
	})
}
