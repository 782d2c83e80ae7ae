package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shop/cmd"
	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres/statusrepo"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	configs := getConfigs()

	logger, err := logging.New(configs.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	catalog, err := loadStatusCatalog(gormDB)
	if err != nil {
		logger.Fatal("failed to load status catalog", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, gormDB, catalog, logger)

	job := app.CreateStaleOrderJob()
	if err = job.Start(); err != nil {
		logger.Fatal("failed to start stale order job", zap.Error(err))
	}
	defer job.Stop()

	startWebServer(&app, configs, logger)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		AppEnv:             os.Getenv("APP_ENV"),
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		StaleOrderTTL:      durationOrDefault("STALE_ORDER_TTL", 24*time.Hour),
		StaleOrderSchedule: envOrDefault("STALE_ORDER_SCHEDULE", "@every 10m"),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func loadStatusCatalog(gormDB *gorm.DB) (status.Catalog, error) {
	statuses, err := statusrepo.NewGormStatusRepository(gormDB).GetAll(context.Background())
	if err != nil {
		return status.Catalog{}, err
	}
	return status.NewCatalog(statuses)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(httpin.RequestLogger(logger))
	e.Use(httpin.Auth([]byte(configs.JWTSecret)))

	app.CreateHTTPServer().RegisterRoutes(e)

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
		logger.Fatal("web server stopped", zap.Error(err))
	}
}
