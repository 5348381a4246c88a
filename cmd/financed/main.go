package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/usecase"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/service"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/infrastructure/config"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/infrastructure/kafka"
	pgRepo "github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/infrastructure/postgres"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/infrastructure/redis"
	grpcPresentation "github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/presentation/grpc"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/presentation/rest"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/auth"
	pkgkafka "github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/kafka"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/observability"
	pkgpostgres "github.com/riderbookmybike-blip/bookmy.bike-sub007/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   getEnv("LOG_LEVEL", "info"),
		Format:  getEnv("LOG_FORMAT", "json"),
		Service: cfg.ServiceName,
	})

	logger.Info("starting finance-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	schemeRepo := pgRepo.NewSchemeRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	schemeCache := redis.NewSchemeCache(redisClient, cfg.Redis.CacheTTL, logger)

	simulator := service.NewSimulator()

	// Wire use cases.
	createUC := usecase.NewCreateSchemeUseCase(schemeRepo, publisher, schemeCache)
	updateUC := usecase.NewUpdateSchemeUseCase(schemeRepo, publisher, schemeCache)
	getUC := usecase.NewGetSchemeUseCase(schemeRepo, schemeCache)
	listUC := usecase.NewListSchemesUseCase(schemeRepo)
	activateUC := usecase.NewActivateSchemeUseCase(schemeRepo, publisher, schemeCache)
	deactivateUC := usecase.NewDeactivateSchemeUseCase(schemeRepo, publisher, schemeCache)
	simulateUC := usecase.NewSimulateSchemeUseCase(schemeRepo, schemeCache, simulator)

	// JWT service (validation-only; the platform gateway issues tokens).
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewFinanceHandler(
		createUC, updateUC, getUC, listUC, activateUC, deactivateUC, simulateUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, redisClient, logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("finance-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
