package postgres

import (
	"database/sql"
	"errors"

	"opeec-backend/internal/repository"

	ierr "opeec-backend/internal/errors"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.SettingsRepository
	repository.CatalogRepository
	repository.EquipmentRepository
	repository.OrderRepository
	repository.MigrationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		SettingsRepository:  NewSettingsRepository(db),
		CatalogRepository:   NewCatalogRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		OrderRepository:     NewOrderRepository(db),
		MigrationRepository: NewMigrationRepository(db),
	}
}

// DB exposes the underlying pool for jobs that manage their own statements.
func (s *Store) DB() *sql.DB {
	return s.db
}

// mapError marks sql.ErrNoRows as not found and everything else as a database error.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.Wrap(err, op, ierr.ErrNotFound)
	}
	return ierr.Wrap(err, op, ierr.ErrDatabase)
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
