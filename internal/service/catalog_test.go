package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opeec-backend/internal/domain"

	ierr "opeec-backend/internal/errors"
)

func intRef(v int) *int    { return &v }
func boolRef(v bool) *bool { return &v }

func validCatalogInput(name domain.CatalogName) domain.CatalogEntryInput {
	return domain.CatalogEntryInput{
		Name: name,
		Unit: domain.DurationUnitDays,
		Options: []domain.CatalogOptionInput{
			{Label: "1 day", Value: intRef(1), Recommended: boolRef(true)},
			{Label: "3 days", Value: intRef(3), Recommended: boolRef(false)},
		},
	}
}

func TestCatalogService_ListIsCached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepo)
	entries := []domain.DurationCatalogEntry{{ID: "min-id", Name: domain.CatalogMinimumDuration, Unit: domain.DurationUnitDays}}
	repo.On("List", ctx).Return(entries, nil).Once()

	svc := NewCatalogService(repo, time.Minute)
	for i := 0; i < 3; i++ {
		got, err := svc.ListCatalogEntries(ctx)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
	}
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestCatalogService_GetCatalogEntry(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepo)
	entry := &domain.DurationCatalogEntry{ID: "notice-id", Name: domain.CatalogAdvanceNotice, Unit: domain.DurationUnitHours}
	repo.On("GetByName", ctx, domain.CatalogAdvanceNotice).Return(entry, nil).Once()
	repo.On("GetByID", ctx, "gone").Return(nil, ierr.NewError("no rows", ierr.ErrNotFound))

	svc := NewCatalogService(repo, time.Minute)

	got, err := svc.GetCatalogEntry(ctx, domain.CatalogAdvanceNotice)
	require.NoError(t, err)
	assert.Equal(t, "notice-id", got.ID)
	_, err = svc.GetCatalogEntry(ctx, domain.CatalogAdvanceNotice)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetByName", 1)

	_, err = svc.GetCatalogEntryByID(ctx, "gone")
	assert.True(t, ierr.IsNotFound(err))
}

func TestCatalogService_UpsertCatalogEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("All entries applied", func(t *testing.T) {
		repo := new(MockCatalogRepo)
		repo.On("Upsert", ctx, mock.MatchedBy(func(e *domain.DurationCatalogEntry) bool {
			return len(e.Options) == 2 && e.Options[0].Recommended && e.Options[1].Value == 3
		})).Return(nil).Twice()

		result, err := NewCatalogService(repo, time.Minute).UpsertCatalogEntries(ctx, []domain.CatalogEntryInput{
			validCatalogInput(domain.CatalogMinimumDuration),
			validCatalogInput(domain.CatalogMaximumDuration),
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.CatalogName{domain.CatalogMinimumDuration, domain.CatalogMaximumDuration}, result.Applied)
		assert.Empty(t, result.Failed)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid entries fail alone", func(t *testing.T) {
		repo := new(MockCatalogRepo)
		repo.On("Upsert", ctx, mock.Anything).Return(nil).Once()

		badUnit := validCatalogInput(domain.CatalogAdvanceNotice)
		badUnit.Unit = "fortnights"
		badOption := validCatalogInput(domain.CatalogMaximumDuration)
		badOption.Options[1].Recommended = nil

		result, err := NewCatalogService(repo, time.Minute).UpsertCatalogEntries(ctx, []domain.CatalogEntryInput{
			badUnit,
			validCatalogInput(domain.CatalogMinimumDuration),
			badOption,
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.CatalogName{domain.CatalogMinimumDuration}, result.Applied)
		assert.Contains(t, result.Failed[domain.CatalogAdvanceNotice], "Unit")
		assert.Contains(t, result.Failed[domain.CatalogMaximumDuration], "Recommended")
		repo.AssertNumberOfCalls(t, "Upsert", 1)
	})

	t.Run("Upsert invalidates the cache", func(t *testing.T) {
		repo := new(MockCatalogRepo)
		repo.On("List", ctx).Return([]domain.DurationCatalogEntry{}, nil)
		repo.On("Upsert", ctx, mock.Anything).Return(nil)

		svc := NewCatalogService(repo, time.Minute)
		_, _ = svc.ListCatalogEntries(ctx)
		_, err := svc.UpsertCatalogEntries(ctx, []domain.CatalogEntryInput{validCatalogInput(domain.CatalogMinimumDuration)})
		require.NoError(t, err)
		_, _ = svc.ListCatalogEntries(ctx)
		repo.AssertNumberOfCalls(t, "List", 2)
	})

	t.Run("Empty batch is a validation error", func(t *testing.T) {
		_, err := NewCatalogService(new(MockCatalogRepo), time.Minute).UpsertCatalogEntries(ctx, nil)
		assert.True(t, ierr.IsValidation(err))
	})
}

func TestValidateCatalogEntry(t *testing.T) {
	t.Run("Unit", func(t *testing.T) {
		in := validCatalogInput(domain.CatalogMinimumDuration)
		in.Unit = "years"
		err := validateCatalogEntry(in)
		assert.True(t, ierr.Is(err, ierr.ErrInvalidCatalogUnit))
	})

	t.Run("Option missing value", func(t *testing.T) {
		in := validCatalogInput(domain.CatalogMinimumDuration)
		in.Options[0].Value = nil
		err := validateCatalogEntry(in)
		assert.True(t, ierr.Is(err, ierr.ErrInvalidCatalogOption))
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("Negative option value", func(t *testing.T) {
		in := validCatalogInput(domain.CatalogMinimumDuration)
		in.Options[0].Value = intRef(-1)
		assert.True(t, ierr.Is(validateCatalogEntry(in), ierr.ErrInvalidCatalogOption))
	})

	t.Run("Unknown name", func(t *testing.T) {
		in := validCatalogInput("rental-window")
		err := validateCatalogEntry(in)
		assert.True(t, ierr.Is(err, ierr.ErrValidation))
		assert.False(t, ierr.Is(err, ierr.ErrInvalidCatalogOption))
	})

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validateCatalogEntry(validCatalogInput(domain.CatalogMaximumDuration)))
	})
}
