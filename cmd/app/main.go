package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/courierrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/zonerepo"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrateSchema(db); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, db)

	jobManager := root.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	return cmd.Config{
		HTTPPort:                     envOrDefault("HTTP_PORT", "8080"),
		DBHost:                       envOrDefault("DB_HOST", "localhost"),
		DBPort:                       envOrDefault("DB_PORT", "5432"),
		DBUser:                       envOrDefault("DB_USER", "postgres"),
		DBPassword:                   os.Getenv("DB_PASSWORD"),
		DBName:                       envOrDefault("DB_NAME", "restaurant"),
		DBSslMode:                    envOrDefault("DB_SSLMODE", "disable"),
		NotificationCapacity:         envIntOrDefault("NOTIFICATION_CAPACITY", 1000),
		NotificationRetentionMinutes: envIntOrDefault("NOTIFICATION_RETENTION_MINUTES", 60),
		PurgeSchedule:                envOrDefault("NOTIFICATION_PURGE_SCHEDULE", "0 * * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns unique index violations into gorm.ErrDuplicatedKey,
	// which the order repository relies on for pickup token collisions.
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func migrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.LineExclusionDTO{},
		&menurepo.OfferingDTO{},
		&courierrepo.CourierDTO{},
		&zonerepo.ZoneDTO{},
	)
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateReassignCourierCommandHandler(),
		root.CreateNotifyArrivalCommandHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateTrackOrderQueryHandler(),
		root.CreateGetKitchenQueueQueryHandler(),
		root.CreateGetCourierDeliveriesQueryHandler(),
		root.Bus(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
