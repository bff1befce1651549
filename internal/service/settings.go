package service

import (
	"context"
	"sync"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/repository"
	"opeec-backend/internal/validator"

	ierr "opeec-backend/internal/errors"
)

type settingsService struct {
	repo repository.SettingsRepository

	mu        sync.RWMutex
	observers []SettingsObserver
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.PercentageSettings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsService) Current(ctx context.Context) (*domain.PercentageSettings, error) {
	settings, err := s.repo.Get(ctx)
	if ierr.IsNotFound(err) {
		return nil, ierr.WithHint(
			ierr.Wrap(err, "no percentage settings record", ierr.ErrSettingsUnavailable),
			"pricing temporarily unavailable",
			ierr.ErrSettingsUnavailable,
		)
	}
	return settings, err
}

// UpsertSettings merges patch into the stored record, or into the defaults
// when none exists yet. Concurrent upserts are last-writer-wins.
func (s *settingsService) UpsertSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.PercentageSettings, error) {
	logger.EnterMethod("settingsService.UpsertSettings")

	merged := domain.DefaultPercentageSettings()
	existing, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		merged = *existing
	case ierr.IsNotFound(err):
		logger.Info("No percentage settings yet, starting from defaults")
	default:
		logger.ExitMethodWithError("settingsService.UpsertSettings", err)
		return nil, err
	}

	patch.Apply(&merged)
	if err := validator.ValidateRequest(merged); err != nil {
		logger.ExitMethodWithError("settingsService.UpsertSettings", err)
		return nil, err
	}

	if err := s.repo.Save(ctx, &merged); err != nil {
		logger.ExitMethodWithError("settingsService.UpsertSettings", err)
		return nil, err
	}

	s.notify(ctx, &merged)
	logger.ExitMethod("settingsService.UpsertSettings", "admin_fee_percentage", merged.AdminFeePercentage, "tax_percentage", merged.TaxPercentage)
	return &merged, nil
}

func (s *settingsService) Subscribe(observer SettingsObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *settingsService) notify(ctx context.Context, settings *domain.PercentageSettings) {
	s.mu.RLock()
	observers := append([]SettingsObserver(nil), s.observers...)
	s.mu.RUnlock()

	for _, observe := range observers {
		snapshot := *settings
		observe(ctx, &snapshot)
	}
}
