package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"opeec-backend/internal/domain"
	ierr "opeec-backend/internal/errors"
)

// DurationFactorMode selects how the insurance duration surcharge is computed.
type DurationFactorMode string

const (
	// FactorModeFixed adds 0.5 percentage points per day beyond day 3.
	FactorModeFixed DurationFactorMode = "fixed"
	// FactorModeMultiplier adds settings.DailyInsuranceMultiplier percentage
	// points per day beyond day 3.
	FactorModeMultiplier DurationFactorMode = "multiplier"
)

const (
	surchargeFreeDays = 3
	fallbackRiskRate  = 1
)

var (
	hundred             = decimal.NewFromInt(100)
	fixedDailySurcharge = decimal.NewFromFloat(0.5)
	surchargeCap        = decimal.NewFromInt(3)
)

// Engine turns a rental into a fee breakdown.
type Engine struct {
	mode DurationFactorMode
}

func NewEngine(mode DurationFactorMode) *Engine {
	if mode != FactorModeMultiplier {
		mode = FactorModeFixed
	}
	return &Engine{mode: mode}
}

func (e *Engine) Mode() DurationFactorMode {
	return e.mode
}

// Calculate prices a rental with the fixed duration factor.
func Calculate(in domain.FeeInput, settings *domain.PercentageSettings) (*domain.FeeBreakdown, error) {
	return NewEngine(FactorModeFixed).Calculate(in, settings)
}

// Calculate computes the breakdown. Intermediate amounts that feed later steps
// are rounded first so the components always add up to the total.
func (e *Engine) Calculate(in domain.FeeInput, settings *domain.PercentageSettings) (*domain.FeeBreakdown, error) {
	if settings == nil {
		return nil, ierr.WithHint(
			ierr.NewError("no percentage settings record", ierr.ErrSettingsUnavailable),
			"pricing temporarily unavailable",
			ierr.ErrSettingsUnavailable,
		)
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	rentalFee := decimal.NewFromFloat(in.RentalFee)
	equipmentValue := decimal.NewFromFloat(in.EquipmentValue)

	platformFee := rentalFee.Mul(percent(settings.AdminFeePercentage)).Round(2)

	taxable := rentalFee.Add(platformFee)
	taxAmount := taxable.Mul(percent(settings.TaxPercentage))

	insuranceAmount := decimal.Zero
	depositAmount := decimal.Zero
	if in.IsInsurance {
		factor := e.durationFactor(in.RentalDays, settings)
		insuranceAmount = equipmentValue.Mul(riskRate(settings).Div(hundred)).Mul(factor)
	} else {
		depositAmount = equipmentValue.Mul(percent(settings.DepositPercentage))
	}

	rentalFee = rentalFee.Round(2)
	taxAmount = taxAmount.Round(2)
	insuranceAmount = insuranceAmount.Round(2)
	depositAmount = depositAmount.Round(2)

	subtotal := rentalFee.Add(platformFee).Add(insuranceAmount).Add(depositAmount)
	total := subtotal.Add(taxAmount)

	return &domain.FeeBreakdown{
		RentalFee:       rentalFee.InexactFloat64(),
		PlatformFee:     platformFee.InexactFloat64(),
		TaxAmount:       taxAmount.InexactFloat64(),
		InsuranceAmount: insuranceAmount.InexactFloat64(),
		DepositAmount:   depositAmount.InexactFloat64(),
		Subtotal:        subtotal.InexactFloat64(),
		TotalAmount:     total.InexactFloat64(),
	}, nil
}

// DurationFactor is the fixed insurance multiplier for a rental length:
// 1 up to 3 days, then +0.5% per extra day capped at +3%.
func DurationFactor(rentalDays int) float64 {
	return durationFactor(rentalDays, fixedDailySurcharge).InexactFloat64()
}

func (e *Engine) durationFactor(rentalDays int, settings *domain.PercentageSettings) decimal.Decimal {
	if e.mode == FactorModeMultiplier {
		return durationFactor(rentalDays, decimal.NewFromFloat(settings.DailyInsuranceMultiplier))
	}
	return durationFactor(rentalDays, fixedDailySurcharge)
}

func durationFactor(rentalDays int, perDay decimal.Decimal) decimal.Decimal {
	if rentalDays <= surchargeFreeDays {
		return decimal.NewFromInt(1)
	}
	extra := decimal.NewFromInt(int64(rentalDays - surchargeFreeDays)).Mul(perDay)
	surcharge := decimal.Min(surchargeCap, extra)
	return decimal.NewFromInt(1).Add(surcharge.Div(hundred))
}

func riskRate(settings *domain.PercentageSettings) decimal.Decimal {
	if settings.InsurancePercentage == nil || !finite(*settings.InsurancePercentage) {
		return decimal.NewFromInt(fallbackRiskRate)
	}
	return decimal.NewFromFloat(*settings.InsurancePercentage)
}

func percent(p float64) decimal.Decimal {
	return decimal.NewFromFloat(p).Div(hundred)
}

func validateInput(in domain.FeeInput) error {
	switch {
	case !finite(in.RentalFee) || in.RentalFee < 0:
		return ierr.NewErrorf(ierr.ErrValidation, "rental fee must be a non-negative number, got %v", in.RentalFee)
	case !finite(in.EquipmentValue) || in.EquipmentValue < 0:
		return ierr.NewErrorf(ierr.ErrValidation, "equipment value must be a non-negative number, got %v", in.EquipmentValue)
	case in.RentalDays < 1:
		return ierr.NewErrorf(ierr.ErrValidation, "rental days must be at least 1, got %d", in.RentalDays)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
