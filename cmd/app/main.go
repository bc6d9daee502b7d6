package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"crown/cmd"
	"crown/internal/adapters/out/postgres"
	"crown/internal/pkg/pagination"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	app := newCompositionRoot(configs, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	router, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	startWebServer(router, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		StorageDriver:        envOrDefault("STORAGE_DRIVER", cmd.StorageDriverPostgres),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               envOrDefault("DB_NAME", "crown"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		DBCreateIfMissing:    envBool("DB_CREATE_IF_MISSING", false),
		AppName:              envOrDefault("APP_NAME", "crownApp"),
		AppEnableTranslation: envBool("APP_ENABLE_TRANSLATION", true),
		PageDefaultSize:      envInt("PAGE_DEFAULT_SIZE", pagination.DefaultPageSize),
		PageMaxSize:          envInt("PAGE_MAX_SIZE", pagination.DefaultMaxSize),
		LogLevel:             envOrDefault("LOG_LEVEL", "info"),
		StatsSchedule:        os.Getenv("STATS_SCHEDULE"),
	}
	return config
}

func newCompositionRoot(configs cmd.Config, logger *slog.Logger) cmd.CompositionRoot {
	switch configs.StorageDriver {
	case cmd.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		return cmd.NewInMemoryCompositionRoot(configs, logger)
	case cmd.StorageDriverPostgres:
	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q", configs.StorageDriver)
	}

	settings := postgres.Settings{
		Host:     configs.DBHost,
		Port:     configs.DBPort,
		User:     configs.DBUser,
		Password: configs.DBPassword,
		Name:     configs.DBName,
		SSLMode:  configs.DBSslMode,
	}

	if configs.DBCreateIfMissing {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		created, err := postgres.EnsureDatabase(ctx, settings)
		cancel()
		if err != nil {
			log.Fatalf("Failed to ensure database: %v", err)
		}
		if created {
			logger.Info("Created database", "name", configs.DBName)
		}
	}

	gormDB, err := postgres.Open(settings)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return cmd.NewCompositionRoot(configs, gormDB, logger)
}

func startWebServer(e *echo.Echo, port string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()
	slog.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
