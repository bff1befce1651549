package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/pricing"
	"opeec-backend/internal/service"
)

// MockSettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (*domain.PercentageSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PercentageSettings), args.Error(1)
}
func (m *MockSettingsService) Current(ctx context.Context) (*domain.PercentageSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PercentageSettings), args.Error(1)
}
func (m *MockSettingsService) UpsertSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.PercentageSettings, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PercentageSettings), args.Error(1)
}
func (m *MockSettingsService) Subscribe(observer service.SettingsObserver) {
	m.Called(observer)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCatalogEntry(ctx context.Context, name domain.CatalogName) (*domain.DurationCatalogEntry, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DurationCatalogEntry), args.Error(1)
}
func (m *MockCatalogService) GetCatalogEntryByID(ctx context.Context, id string) (*domain.DurationCatalogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DurationCatalogEntry), args.Error(1)
}
func (m *MockCatalogService) ListCatalogEntries(ctx context.Context) ([]domain.DurationCatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DurationCatalogEntry), args.Error(1)
}
func (m *MockCatalogService) UpsertCatalogEntries(ctx context.Context, inputs []domain.CatalogEntryInput) (*domain.CatalogUpsertResult, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogUpsertResult), args.Error(1)
}
func (m *MockCatalogService) Lookup(ctx context.Context) (pricing.CatalogLookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pricing.CatalogLookup), args.Error(1)
}

// MockPricingService
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Quote(ctx context.Context, in domain.FeeInput) (*domain.FeeBreakdown, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeBreakdown), args.Error(1)
}

// MockEquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) CreateEquipment(ctx context.Context, in domain.EquipmentInput) (*domain.Equipment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, *domain.EquipmentDurations, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Equipment), args.Get(1).(*domain.EquipmentDurations), args.Error(2)
}
func (m *MockEquipmentService) UpdateLocation(ctx context.Context, id string, location domain.GeoPoint) (*domain.Equipment, error) {
	args := m.Called(ctx, id, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) ResolveDurations(ctx context.Context, equipment *domain.Equipment) *domain.EquipmentDurations {
	args := m.Called(ctx, equipment)
	return args.Get(0).(*domain.EquipmentDurations)
}

// MockOrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
