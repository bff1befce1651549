package service

import (
	"context"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/pricing"
)

type pricingService struct {
	settings SettingsService
	engine   *pricing.Engine
}

func NewPricingService(settings SettingsService, engine *pricing.Engine) PricingService {
	return &pricingService{settings: settings, engine: engine}
}

// Quote prices a rental against the settings live right now without storing anything.
func (s *pricingService) Quote(ctx context.Context, in domain.FeeInput) (*domain.FeeBreakdown, error) {
	logger.EnterMethod("pricingService.Quote", "rental_fee", in.RentalFee, "rental_days", in.RentalDays, "is_insurance", in.IsInsurance)

	settings, err := s.settings.Current(ctx)
	if err != nil {
		logger.ExitMethodWithError("pricingService.Quote", err)
		return nil, err
	}

	fees, err := s.engine.Calculate(in, settings)
	if err != nil {
		logger.ExitMethodWithError("pricingService.Quote", err)
		return nil, err
	}

	logger.ExitMethod("pricingService.Quote", "total_amount", fees.TotalAmount, "mode", s.engine.Mode())
	return fees, nil
}
