package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	grpcapi "opeec-backend/internal/api/grpc"
	"opeec-backend/internal/api/grpc/interceptor"
	httpapi "opeec-backend/internal/api/http"
	"opeec-backend/internal/config"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/pricing"
	"opeec-backend/internal/repository/postgres"
	"opeec-backend/internal/service"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrate := flag.Bool("migrate", false, "Create missing tables before serving")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format, cfg.LogFileOutput())
	logger.Info("Starting OPEEC pricing backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Pricing configuration", "insurance_factor_mode", cfg.Pricing.InsuranceFactorMode, "catalog_cache_ttl", cfg.CatalogCacheTTL())

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if *migrate {
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			logger.Error("Failed to apply schema", "error", err)
			log.Fatalf("Failed to apply schema: %v", err)
		}
		logger.Info("Database schema ensured")
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	engine := pricing.NewEngine(pricing.DurationFactorMode(cfg.Pricing.InsuranceFactorMode))
	settingsSvc := service.NewSettingsService(store.SettingsRepository)
	catalogSvc := service.NewCatalogService(store.CatalogRepository, cfg.CatalogCacheTTL())
	pricingSvc := service.NewPricingService(settingsSvc, engine)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, catalogSvc, service.DurationDefaults{
		AdvanceNotice:   cfg.Pricing.DefaultAdvanceNotice,
		MinimumDuration: cfg.Pricing.DefaultMinimumDuration,
		MaximumDuration: cfg.Pricing.DefaultMaximumDuration,
	})
	orderSvc := service.NewOrderService(store.OrderRepository, equipmentSvc, settingsSvc, engine)

	// Health follows settings availability
	reporter := grpcapi.NewHealthReporter()
	settingsSvc.Subscribe(reporter.SettingsChanged)
	reporter.Sync(context.Background(), settingsSvc)

	// Set up gRPC server
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer := grpcapi.NewServer(reporter,
		grpc.UnaryInterceptor(interceptor.NewLoggingInterceptor().Unary()),
	)

	go func() {
		logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
		}
	}()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Settings:  settingsSvc,
		Catalog:   catalogSvc,
		Pricing:   pricingSvc,
		Equipment: equipmentSvc,
		Orders:    orderSvc,
	})
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down servers...")
	reporter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Servers stopped. Goodbye!")
}
