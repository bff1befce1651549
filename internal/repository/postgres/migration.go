package postgres

import (
	"context"
	"database/sql"
	"time"

	"opeec-backend/internal/repository"
)

type migrationRepository struct {
	db *sql.DB
}

func NewMigrationRepository(db *sql.DB) repository.MigrationRepository {
	return &migrationRepository{db: db}
}

func (r *migrationRepository) IsApplied(ctx context.Context, name string) (bool, error) {
	var applied bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM data_migrations WHERE name = $1)`, name).Scan(&applied)
	if err != nil {
		return false, mapError(err, "check data migration")
	}
	return applied, nil
}

func (r *migrationRepository) MarkApplied(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO data_migrations (name, applied_on) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, name, time.Now().UTC())
	return mapError(err, "record data migration")
}
