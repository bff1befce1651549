package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository"
)

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetByName(ctx context.Context, name domain.CatalogName) (*domain.DurationCatalogEntry, error) {
	query := `SELECT id, name, unit, updated_on FROM duration_catalog WHERE name = $1`
	e := &domain.DurationCatalogEntry{}
	err := r.db.QueryRowContext(ctx, query, string(name)).Scan(&e.ID, &e.Name, &e.Unit, &e.UpdatedOn)
	if err != nil {
		return nil, mapError(err, "get duration catalog by name")
	}
	if e.Options, err = r.listOptions(ctx, e.ID); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*domain.DurationCatalogEntry, error) {
	query := `SELECT id, name, unit, updated_on FROM duration_catalog WHERE id = $1`
	e := &domain.DurationCatalogEntry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Unit, &e.UpdatedOn)
	if err != nil {
		return nil, mapError(err, "get duration catalog by id")
	}
	if e.Options, err = r.listOptions(ctx, e.ID); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *catalogRepository) List(ctx context.Context) ([]domain.DurationCatalogEntry, error) {
	query := `SELECT id, name, unit, updated_on FROM duration_catalog ORDER BY name`
	logger.DatabaseCall("catalog.list", query)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err, "list duration catalog")
	}
	var entries []domain.DurationCatalogEntry
	for rows.Next() {
		var e domain.DurationCatalogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Unit, &e.UpdatedOn); err != nil {
			rows.Close()
			return nil, mapError(err, "scan duration catalog")
		}
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list duration catalog")
	}

	for i := range entries {
		if entries[i].Options, err = r.listOptions(ctx, entries[i].ID); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (r *catalogRepository) listOptions(ctx context.Context, catalogID string) ([]domain.DurationOption, error) {
	query := `SELECT label, value, recommended FROM duration_catalog_options WHERE catalog_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, catalogID)
	if err != nil {
		return nil, mapError(err, "list duration catalog options")
	}
	defer rows.Close()

	options := []domain.DurationOption{}
	for rows.Next() {
		var o domain.DurationOption
		if err := rows.Scan(&o.Label, &o.Value, &o.Recommended); err != nil {
			return nil, mapError(err, "scan duration catalog option")
		}
		options = append(options, o)
	}
	return options, mapError(rows.Err(), "list duration catalog options")
}

// Upsert replaces the entry's unit and option list in one transaction. An
// existing entry keeps its id so stored pointers stay valid.
func (r *catalogRepository) Upsert(ctx context.Context, entry *domain.DurationCatalogEntry) error {
	logger.DatabaseCall("catalog.upsert", string(entry.Name))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err, "begin catalog upsert")
	}
	defer tx.Rollback()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.UpdatedOn = time.Now().UTC()

	query := `INSERT INTO duration_catalog (id, name, unit, updated_on) VALUES ($1, $2, $3, $4) 
	          ON CONFLICT (name) DO UPDATE SET unit = EXCLUDED.unit, updated_on = EXCLUDED.updated_on 
	          RETURNING id`
	err = tx.QueryRowContext(ctx, query, entry.ID, string(entry.Name), string(entry.Unit), entry.UpdatedOn).Scan(&entry.ID)
	if err != nil {
		return mapError(err, "upsert duration catalog")
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM duration_catalog_options WHERE catalog_id = $1`, entry.ID); err != nil {
		return mapError(err, "clear duration catalog options")
	}

	for i, o := range entry.Options {
		_, err = tx.ExecContext(ctx, `INSERT INTO duration_catalog_options (catalog_id, position, label, value, recommended) VALUES ($1, $2, $3, $4, $5)`,
			entry.ID, i, o.Label, o.Value, o.Recommended)
		if err != nil {
			return mapError(err, "insert duration catalog option")
		}
	}

	if err := tx.Commit(); err != nil {
		logger.DatabaseResult("catalog.upsert", 0, err)
		return mapError(err, "commit catalog upsert")
	}
	logger.DatabaseResult("catalog.upsert", int64(len(entry.Options)), nil)
	return nil
}
