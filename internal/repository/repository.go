package repository

import (
	"context"

	"opeec-backend/internal/domain"
)

// SettingsRepository stores the singleton PercentageSettings record.
// Writes are last-writer-wins.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.PercentageSettings, error)
	Save(ctx context.Context, settings *domain.PercentageSettings) error
}

type CatalogRepository interface {
	GetByName(ctx context.Context, name domain.CatalogName) (*domain.DurationCatalogEntry, error)
	GetByID(ctx context.Context, id string) (*domain.DurationCatalogEntry, error)
	List(ctx context.Context) ([]domain.DurationCatalogEntry, error)
	// Upsert replaces one entry and its options atomically.
	Upsert(ctx context.Context, entry *domain.DurationCatalogEntry) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	UpdateLocation(ctx context.Context, id string, location domain.GeoPoint) error

	// Maintenance
	ListLocations(ctx context.Context, afterID string, limit int) ([]domain.LocationRecord, error)
	ListDurations(ctx context.Context, afterID string, limit int) ([]domain.DurationRecord, error)
	UpdateDurations(ctx context.Context, record domain.DurationRecord) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

// MigrationRepository records one-time data migrations.
type MigrationRepository interface {
	IsApplied(ctx context.Context, name string) (bool, error)
	MarkApplied(ctx context.Context, name string) error
}
