package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"opeec-backend/internal/domain"
)

// MockSettingsRepo
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.PercentageSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PercentageSettings), args.Error(1)
}
func (m *MockSettingsRepo) Save(ctx context.Context, settings *domain.PercentageSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockCatalogRepo
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) GetByName(ctx context.Context, name domain.CatalogName) (*domain.DurationCatalogEntry, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DurationCatalogEntry), args.Error(1)
}
func (m *MockCatalogRepo) GetByID(ctx context.Context, id string) (*domain.DurationCatalogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DurationCatalogEntry), args.Error(1)
}
func (m *MockCatalogRepo) List(ctx context.Context) ([]domain.DurationCatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DurationCatalogEntry), args.Error(1)
}
func (m *MockCatalogRepo) Upsert(ctx context.Context, entry *domain.DurationCatalogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, equipment *domain.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) UpdateLocation(ctx context.Context, id string, location domain.GeoPoint) error {
	args := m.Called(ctx, id, location)
	return args.Error(0)
}
func (m *MockEquipmentRepo) ListLocations(ctx context.Context, afterID string, limit int) ([]domain.LocationRecord, error) {
	args := m.Called(ctx, afterID, limit)
	return args.Get(0).([]domain.LocationRecord), args.Error(1)
}
func (m *MockEquipmentRepo) ListDurations(ctx context.Context, afterID string, limit int) ([]domain.DurationRecord, error) {
	args := m.Called(ctx, afterID, limit)
	return args.Get(0).([]domain.DurationRecord), args.Error(1)
}
func (m *MockEquipmentRepo) UpdateDurations(ctx context.Context, record domain.DurationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
