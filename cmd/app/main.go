package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cashrun/cmd"
	httpapi "cashrun/internal/adapters/in/http"
	"cashrun/internal/adapters/out/metrics"
	"cashrun/internal/adapters/out/postgres/atmrepo"
	"cashrun/internal/adapters/out/postgres/orderrepo"
	"cashrun/internal/adapters/out/rediscache"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	defer func() { _ = redisClient.Close() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics, err := metrics.NewPrometheus(registry)
	if err != nil {
		log.Fatalf("Error registering metrics: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		appMetrics,
		rediscache.NewProfileCache(redisClient, configs.ProfileCacheTTL),
		logger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderStatusEventDTO{},
		&atmrepo.AtmDTO{},
		&atmrepo.PreferenceDTO{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return gormDB, nil
}

func startWebServer(app cmd.CompositionRoot, port string, metricsHandler http.Handler, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	doc, err := httpapi.LoadOpenAPI(context.Background())
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	validator, err := httpapi.RequestValidator(doc)
	if err != nil {
		log.Fatalf("Failed to build request validator: %v", err)
	}

	httpapi.RegisterDocs(e)
	app.CreateHTTPServer().RegisterRoutes(e, metricsHandler, validator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
