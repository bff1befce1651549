package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opeec-backend/internal/domain"

	ierr "opeec-backend/internal/errors"
)

func floatRef(v float64) *float64 { return &v }

func notFound() error {
	return ierr.NewError("no rows", ierr.ErrNotFound)
}

func TestSettingsService_Current(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing record is unavailable", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(nil, notFound())

		_, err := NewSettingsService(repo).Current(ctx)
		assert.True(t, ierr.IsSettingsUnavailable(err))
		assert.Equal(t, "pricing temporarily unavailable", ierr.Hint(err, ""))
	})

	t.Run("GetSettings keeps not found", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(nil, notFound())

		_, err := NewSettingsService(repo).GetSettings(ctx)
		assert.True(t, ierr.IsNotFound(err))
		assert.False(t, ierr.IsSettingsUnavailable(err))
	})
}

func TestSettingsService_UpsertSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("First upsert starts from defaults", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(nil, notFound())
		repo.On("Save", ctx, mock.MatchedBy(func(s *domain.PercentageSettings) bool {
			return s.TaxPercentage == 15 && s.AdminFeePercentage == 10 && *s.InsurancePercentage == 8
		})).Return(nil)

		settings, err := NewSettingsService(repo).UpsertSettings(ctx, domain.SettingsPatch{TaxPercentage: floatRef(15)})
		require.NoError(t, err)
		assert.Equal(t, 15.0, settings.TaxPercentage)
		assert.Equal(t, 20.0, settings.DepositPercentage)
		repo.AssertExpectations(t)
	})

	t.Run("Unspecified fields keep stored values", func(t *testing.T) {
		stored := domain.DefaultPercentageSettings()
		stored.AdminFeePercentage = 12
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(&stored, nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		settings, err := NewSettingsService(repo).UpsertSettings(ctx, domain.SettingsPatch{DepositPercentage: floatRef(25)})
		require.NoError(t, err)
		assert.Equal(t, 12.0, settings.AdminFeePercentage)
		assert.Equal(t, 25.0, settings.DepositPercentage)
	})

	t.Run("Out of range value is rejected before writing", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(nil, notFound())

		_, err := NewSettingsService(repo).UpsertSettings(ctx, domain.SettingsPatch{AdminFeePercentage: floatRef(150)})
		assert.True(t, ierr.IsValidation(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Observers see the saved record", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(nil, notFound())
		repo.On("Save", ctx, mock.Anything).Return(nil)

		svc := NewSettingsService(repo)
		var seen *domain.PercentageSettings
		svc.Subscribe(func(_ context.Context, s *domain.PercentageSettings) { seen = s })

		_, err := svc.UpsertSettings(ctx, domain.SettingsPatch{})
		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.Equal(t, 13.0, seen.TaxPercentage)
	})

	t.Run("Save failure is not published", func(t *testing.T) {
		repo := new(MockSettingsRepo)
		repo.On("Get", ctx).Return(nil, notFound())
		repo.On("Save", ctx, mock.Anything).Return(ierr.NewError("write failed", ierr.ErrDatabase))

		svc := NewSettingsService(repo)
		called := false
		svc.Subscribe(func(context.Context, *domain.PercentageSettings) { called = true })

		_, err := svc.UpsertSettings(ctx, domain.SettingsPatch{})
		assert.True(t, ierr.Is(err, ierr.ErrDatabase))
		assert.False(t, called)
	})
}
