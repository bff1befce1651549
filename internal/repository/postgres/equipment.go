package postgres

import (
	"context"
	"database/sql"
	"time"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository"

	ierr "opeec-backend/internal/errors"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (id, owner_id, name, description, daily_rental_fee, equipment_value, address, lat, lng, coordinates, 
	          advance_notice, minimum_duration, maximum_duration, status, created_on, updated_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	logger.DatabaseCall("equipment.create", query, "equipment_id", e.ID)

	now := time.Now().UTC()
	e.CreatedOn = now
	e.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, e.ID, e.OwnerID, e.Name, e.Description, e.DailyRentalFee, e.EquipmentValue,
		e.Location.Address, nullFloat(e.Location.Lat), nullFloat(e.Location.Lng), coordinatesArg(e.Location.Coordinates),
		e.AdvanceNotice, e.MinimumDuration, e.MaximumDuration, string(e.Status), e.CreatedOn, e.UpdatedOn)
	if err != nil {
		logger.DatabaseResult("equipment.create", 0, err)
		return mapError(err, "create equipment")
	}
	return nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT id, owner_id, name, description, daily_rental_fee, equipment_value, address, lat, lng, coordinates, 
	          advance_notice, minimum_duration, maximum_duration, status, created_on, updated_on 
	          FROM equipment WHERE id = $1`
	e := &domain.Equipment{}
	var lat, lng sql.NullFloat64
	var coordinates []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.OwnerID, &e.Name, &e.Description, &e.DailyRentalFee, &e.EquipmentValue,
		&e.Location.Address, &lat, &lng, &coordinates, &e.AdvanceNotice, &e.MinimumDuration, &e.MaximumDuration, &e.Status, &e.CreatedOn, &e.UpdatedOn)
	if err != nil {
		return nil, mapError(err, "get equipment")
	}
	if e.Location, err = buildLocation(e.Location.Address, lat, lng, coordinates); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) UpdateLocation(ctx context.Context, id string, loc domain.GeoPoint) error {
	query := `UPDATE equipment SET address = $1, lat = $2, lng = $3, coordinates = $4, updated_on = $5 WHERE id = $6`
	logger.DatabaseCall("equipment.update_location", query, "equipment_id", id)

	result, err := r.db.ExecContext(ctx, query, loc.Address, nullFloat(loc.Lat), nullFloat(loc.Lng), coordinatesArg(loc.Coordinates), time.Now().UTC(), id)
	if err != nil {
		return mapError(err, "update equipment location")
	}
	return expectOneRow(result, "equipment", id)
}

// ListLocations pages through equipment ordered by id, starting after afterID.
func (r *equipmentRepository) ListLocations(ctx context.Context, afterID string, limit int) ([]domain.LocationRecord, error) {
	query := `SELECT id, address, lat, lng, coordinates FROM equipment WHERE id > $1 ORDER BY id LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, mapError(err, "list equipment locations")
	}
	defer rows.Close()

	var records []domain.LocationRecord
	for rows.Next() {
		var rec domain.LocationRecord
		var address string
		var lat, lng sql.NullFloat64
		var coordinates []byte
		if err := rows.Scan(&rec.EquipmentID, &address, &lat, &lng, &coordinates); err != nil {
			return nil, mapError(err, "scan equipment location")
		}
		if rec.Location, err = buildLocation(address, lat, lng, coordinates); err != nil {
			// Unreadable documents are what the repair job exists for.
			logger.Warn("Unreadable equipment coordinates", "equipment_id", rec.EquipmentID, "error", err)
			rec.Location = domain.GeoPoint{Address: address, Lat: floatPtr(lat), Lng: floatPtr(lng)}
		}
		records = append(records, rec)
	}
	return records, mapError(rows.Err(), "list equipment locations")
}

func (r *equipmentRepository) ListDurations(ctx context.Context, afterID string, limit int) ([]domain.DurationRecord, error) {
	query := `SELECT id, advance_notice, minimum_duration, maximum_duration FROM equipment WHERE id > $1 ORDER BY id LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, afterID, limit)
	if err != nil {
		return nil, mapError(err, "list equipment durations")
	}
	defer rows.Close()

	var records []domain.DurationRecord
	for rows.Next() {
		var rec domain.DurationRecord
		if err := rows.Scan(&rec.EquipmentID, &rec.AdvanceNotice, &rec.MinimumDuration, &rec.MaximumDuration); err != nil {
			return nil, mapError(err, "scan equipment durations")
		}
		records = append(records, rec)
	}
	return records, mapError(rows.Err(), "list equipment durations")
}

func (r *equipmentRepository) UpdateDurations(ctx context.Context, rec domain.DurationRecord) error {
	query := `UPDATE equipment SET advance_notice = $1, minimum_duration = $2, maximum_duration = $3, updated_on = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, rec.AdvanceNotice, rec.MinimumDuration, rec.MaximumDuration, time.Now().UTC(), rec.EquipmentID)
	if err != nil {
		return mapError(err, "update equipment durations")
	}
	return expectOneRow(result, "equipment", rec.EquipmentID)
}

func buildLocation(address string, lat, lng sql.NullFloat64, coordinates []byte) (domain.GeoPoint, error) {
	loc := domain.GeoPoint{Address: address, Lat: floatPtr(lat), Lng: floatPtr(lng)}
	if len(coordinates) == 0 {
		return loc, nil
	}
	var point domain.GeoJSONPoint
	if err := point.Scan(coordinates); err != nil {
		return loc, ierr.Wrap(err, "decode equipment coordinates", ierr.ErrDatabase)
	}
	loc.Coordinates = &point
	return loc, nil
}

// coordinatesArg keeps a nil point as SQL NULL instead of a typed nil Valuer.
func coordinatesArg(p *domain.GeoJSONPoint) any {
	if p == nil {
		return nil
	}
	return *p
}

func expectOneRow(result sql.Result, kind, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err, "rows affected")
	}
	if rows == 0 {
		return ierr.NewErrorf(ierr.ErrNotFound, "%s %s not found", kind, id)
	}
	return nil
}
