package service

import (
	"context"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/pricing"
)

// SettingsObserver is told about every successful settings write.
type SettingsObserver func(ctx context.Context, settings *domain.PercentageSettings)

type SettingsService interface {
	// GetSettings returns the stored record or an ErrNotFound error.
	GetSettings(ctx context.Context) (*domain.PercentageSettings, error)
	// Current is GetSettings for pricing callers: a missing record is ErrSettingsUnavailable.
	Current(ctx context.Context) (*domain.PercentageSettings, error)
	UpsertSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.PercentageSettings, error)
	Subscribe(observer SettingsObserver)
}

type CatalogService interface {
	GetCatalogEntry(ctx context.Context, name domain.CatalogName) (*domain.DurationCatalogEntry, error)
	GetCatalogEntryByID(ctx context.Context, id string) (*domain.DurationCatalogEntry, error)
	ListCatalogEntries(ctx context.Context) ([]domain.DurationCatalogEntry, error)
	UpsertCatalogEntries(ctx context.Context, inputs []domain.CatalogEntryInput) (*domain.CatalogUpsertResult, error)
	// Lookup returns a snapshot of the catalog for duration resolution.
	Lookup(ctx context.Context) (pricing.CatalogLookup, error)
}

type PricingService interface {
	Quote(ctx context.Context, in domain.FeeInput) (*domain.FeeBreakdown, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, in domain.EquipmentInput) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, *domain.EquipmentDurations, error)
	UpdateLocation(ctx context.Context, id string, location domain.GeoPoint) (*domain.Equipment, error)
	ResolveDurations(ctx context.Context, equipment *domain.Equipment) *domain.EquipmentDurations
}

type OrderService interface {
	CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

// DurationDefaults are used when an equipment duration reference cannot be resolved.
type DurationDefaults struct {
	AdvanceNotice   int
	MinimumDuration int
	MaximumDuration int
}
