package postgres

import (
	"context"
	"database/sql"
	"time"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository"
)

// rental dates are stored as DATE columns and exchanged as YYYY-MM-DD
const dateLayout = "2006-01-02"

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, equipment_id, renter_id, owner_id, start_date, end_date, rental_days, is_insurance, 
	          rental_fee, platform_fee, tax_amount, insurance_amount, deposit_amount, subtotal, total_amount, status, created_on) 
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	logger.DatabaseCall("order.create", query, "order_id", o.ID)

	o.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, o.ID, o.EquipmentID, o.RenterID, o.OwnerID, o.StartDate, o.EndDate, o.RentalDays, o.IsInsurance,
		o.Fees.RentalFee, o.Fees.PlatformFee, o.Fees.TaxAmount, o.Fees.InsuranceAmount, o.Fees.DepositAmount, o.Fees.Subtotal, o.Fees.TotalAmount,
		string(o.Status), o.CreatedOn)
	if err != nil {
		logger.DatabaseResult("order.create", 0, err)
		return mapError(err, "create order")
	}
	logger.DatabaseResult("order.create", 1, nil)
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, equipment_id, renter_id, owner_id, start_date, end_date, rental_days, is_insurance, 
	          rental_fee, platform_fee, tax_amount, insurance_amount, deposit_amount, subtotal, total_amount, status, created_on 
	          FROM orders WHERE id = $1`
	o := &domain.Order{}
	var start, end time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.EquipmentID, &o.RenterID, &o.OwnerID, &start, &end, &o.RentalDays, &o.IsInsurance,
		&o.Fees.RentalFee, &o.Fees.PlatformFee, &o.Fees.TaxAmount, &o.Fees.InsuranceAmount, &o.Fees.DepositAmount, &o.Fees.Subtotal, &o.Fees.TotalAmount,
		&o.Status, &o.CreatedOn)
	if err != nil {
		return nil, mapError(err, "get order")
	}
	o.StartDate = start.Format(dateLayout)
	o.EndDate = end.Format(dateLayout)
	return o, nil
}
