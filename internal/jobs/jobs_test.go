package jobs

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"opeec-backend/internal/config"
	"opeec-backend/internal/repository/postgres"
	"opeec-backend/internal/service"
)

func newTestRunner(t *testing.T) (*JobRunner, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })

	store := postgres.NewStore(db)
	cfg := &config.Config{
		Pricing: config.PricingConfig{DefaultAdvanceNotice: 0, DefaultMinimumDuration: 1, DefaultMaximumDuration: 30},
	}
	jr := NewJobRunner(store, &Services{Catalog: service.NewCatalogService(store.CatalogRepository, time.Minute)}, cfg)
	jr.batchSize = 2
	return jr, mock
}
