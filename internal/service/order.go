package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/pricing"
	"opeec-backend/internal/repository"
	"opeec-backend/internal/utils"
	"opeec-backend/internal/validator"

	ierr "opeec-backend/internal/errors"
)

type orderService struct {
	orders    repository.OrderRepository
	equipment EquipmentService
	settings  SettingsService
	engine    *pricing.Engine
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, equipment EquipmentService, settings SettingsService, engine *pricing.Engine) OrderService {
	return &orderService{
		orders:    orders,
		equipment: equipment,
		settings:  settings,
		engine:    engine,
		now:       time.Now,
	}
}

// CreateOrder prices the rental with the settings live at creation time and
// stores the breakdown with the order.
func (s *orderService) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	logger.EnterMethod("orderService.CreateOrder", "equipment_id", in.EquipmentID, "renter_id", in.RenterID)

	order, err := s.createOrder(ctx, in)
	if err != nil {
		logger.ExitMethodWithError("orderService.CreateOrder", err, "equipment_id", in.EquipmentID)
		return nil, err
	}

	logger.ExitMethod("orderService.CreateOrder", "order_id", order.ID, "total_amount", order.Fees.TotalAmount)
	return order, nil
}

func (s *orderService) createOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	if err := validator.ValidateRequest(in); err != nil {
		return nil, err
	}

	equipment, durations, err := s.equipment.GetEquipment(ctx, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.Status != domain.EquipmentStatusAvailable {
		return nil, rejectOrder(fmt.Sprintf("equipment %s is %s", equipment.ID, equipment.Status), "Equipment is not available for rent")
	}
	if equipment.OwnerID == in.RenterID {
		return nil, rejectOrder("renter owns the equipment", "You cannot rent your own equipment")
	}

	days, err := utils.RentalDays(in.StartDate, in.EndDate)
	if err != nil {
		return nil, ierr.WithHint(ierr.Wrap(err, "invalid rental dates", ierr.ErrValidation), err.Error(), ierr.ErrValidation)
	}
	if err := s.checkDurations(in.StartDate, days, durations); err != nil {
		return nil, err
	}

	settings, err := s.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	rentalFee := decimal.NewFromFloat(equipment.DailyRentalFee).Mul(decimal.NewFromInt(int64(days))).Round(2)
	fees, err := s.engine.Calculate(domain.FeeInput{
		RentalFee:      rentalFee.InexactFloat64(),
		IsInsurance:    in.IsInsurance,
		RentalDays:     days,
		EquipmentValue: equipment.EquipmentValue,
	}, settings)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		EquipmentID: equipment.ID,
		RenterID:    in.RenterID,
		OwnerID:     equipment.OwnerID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		RentalDays:  days,
		IsInsurance: in.IsInsurance,
		Fees:        *fees,
		Status:      domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// checkDurations enforces the equipment's advance notice and its minimum and
// maximum rental lengths. A maximum of zero means unbounded.
func (s *orderService) checkDurations(startDate string, days int, durations *domain.EquipmentDurations) error {
	if minDays := durations.MinimumDuration.Days(); days < minDays {
		return rejectOrder(fmt.Sprintf("rental of %d days is below minimum %d", days, minDays),
			fmt.Sprintf("Minimum rental is %s", durationText(durations.MinimumDuration)))
	}
	if maxDays := durations.MaximumDuration.Days(); maxDays > 0 && days > maxDays {
		return rejectOrder(fmt.Sprintf("rental of %d days is above maximum %d", days, maxDays),
			fmt.Sprintf("Maximum rental is %s", durationText(durations.MaximumDuration)))
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return ierr.Wrap(err, "invalid start date", ierr.ErrValidation)
	}
	// Whole days go through AddDate so a large notice cannot overflow time.Duration.
	noticeHours := durations.AdvanceNotice.Hours()
	earliest := s.now().UTC().
		AddDate(0, 0, noticeHours/24).
		Add(time.Duration(noticeHours%24) * time.Hour).
		Truncate(24 * time.Hour)
	if start.Time().Before(earliest) {
		return rejectOrder(fmt.Sprintf("start date %s is before %s", start, earliest.Format("2006-01-02")),
			fmt.Sprintf("This equipment needs %s advance notice", durationText(durations.AdvanceNotice)))
	}
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func rejectOrder(msg, hint string) error {
	return ierr.WithHint(ierr.NewError(msg, ierr.ErrValidation), hint, ierr.ErrValidation)
}

// durationText renders canonical durations as days; catalog labels are used as is.
func durationText(d domain.ResolvedDuration) string {
	if d.Type == "" {
		if d.Count == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", d.Count)
	}
	return d.Label
}
