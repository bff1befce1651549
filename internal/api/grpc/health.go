package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/service"
)

// PricingServiceName is reported SERVING only while a settings record exists.
const PricingServiceName = "pricing"

// HealthReporter publishes pricing readiness through the standard gRPC health service.
type HealthReporter struct {
	server *health.Server
}

func NewHealthReporter() *HealthReporter {
	server := health.NewServer()
	server.SetServingStatus(PricingServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthReporter{server: server}
}

// Sync sets the pricing status from the settings currently stored.
func (h *HealthReporter) Sync(ctx context.Context, settings service.SettingsService) {
	if _, err := settings.Current(ctx); err != nil {
		logger.Warn("Pricing not serving", "error", err)
		h.server.SetServingStatus(PricingServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.server.SetServingStatus(PricingServiceName, healthpb.HealthCheckResponse_SERVING)
}

// SettingsChanged is a service.SettingsObserver.
func (h *HealthReporter) SettingsChanged(_ context.Context, settings *domain.PercentageSettings) {
	if settings == nil {
		return
	}
	h.server.SetServingStatus(PricingServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks every service NOT_SERVING so clients drain before the listener closes.
func (h *HealthReporter) Shutdown() {
	h.server.Shutdown()
}

// NewServer builds the gRPC server exposing health and reflection.
func NewServer(reporter *HealthReporter, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(s, reporter.server)
	// Register reflection service for grpcurl
	reflection.Register(s)
	return s
}
