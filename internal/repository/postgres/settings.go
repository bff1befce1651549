package postgres

import (
	"context"
	"database/sql"
	"time"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository"
)

// settingsRowID is the primary key of the one live settings row.
const settingsRowID = 1

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.PercentageSettings, error) {
	query := `SELECT admin_fee_percentage, insurance_percentage, daily_insurance_multiplier, deposit_percentage, tax_percentage, stripe_fee_percentage, updated_on 
	          FROM percentage_settings WHERE id = $1`
	logger.DatabaseCall("settings.get", query)

	s := &domain.PercentageSettings{}
	var insurance sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, settingsRowID).Scan(&s.AdminFeePercentage, &insurance, &s.DailyInsuranceMultiplier, &s.DepositPercentage, &s.TaxPercentage, &s.StripeFeePercentage, &s.UpdatedOn)
	if err != nil {
		return nil, mapError(err, "get percentage settings")
	}
	s.InsurancePercentage = floatPtr(insurance)
	return s, nil
}

// Save writes the full record. Concurrent saves are last-writer-wins.
func (r *settingsRepository) Save(ctx context.Context, s *domain.PercentageSettings) error {
	query := `INSERT INTO percentage_settings (id, admin_fee_percentage, insurance_percentage, daily_insurance_multiplier, deposit_percentage, tax_percentage, stripe_fee_percentage, updated_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) 
	          ON CONFLICT (id) DO UPDATE SET admin_fee_percentage = EXCLUDED.admin_fee_percentage, insurance_percentage = EXCLUDED.insurance_percentage, 
	          daily_insurance_multiplier = EXCLUDED.daily_insurance_multiplier, deposit_percentage = EXCLUDED.deposit_percentage, 
	          tax_percentage = EXCLUDED.tax_percentage, stripe_fee_percentage = EXCLUDED.stripe_fee_percentage, updated_on = EXCLUDED.updated_on`
	logger.DatabaseCall("settings.save", query)

	s.UpdatedOn = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query, settingsRowID, s.AdminFeePercentage, nullFloat(s.InsurancePercentage), s.DailyInsuranceMultiplier, s.DepositPercentage, s.TaxPercentage, s.StripeFeePercentage, s.UpdatedOn)
	if err != nil {
		logger.DatabaseResult("settings.save", 0, err)
		return mapError(err, "save percentage settings")
	}
	rows, _ := result.RowsAffected()
	logger.DatabaseResult("settings.save", rows, nil)
	return nil
}
