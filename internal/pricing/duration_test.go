package pricing

import (
	"testing"

	"opeec-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *StaticCatalog {
	return NewStaticCatalog([]domain.DurationCatalogEntry{
		{
			ID:   "notice-id",
			Name: domain.CatalogAdvanceNotice,
			Unit: domain.DurationUnitHours,
			Options: []domain.DurationOption{
				{Label: "12 hours", Value: 12},
				{Label: "1 day", Value: 24, Recommended: true},
				{Label: "2 days", Value: 48},
				{Label: "3 days", Value: 72},
			},
		},
		{
			ID:   "min-id",
			Name: domain.CatalogMinimumDuration,
			Unit: domain.DurationUnitDays,
			Options: []domain.DurationOption{
				{Label: "1 day", Value: 1, Recommended: true},
				{Label: "3 days", Value: 3},
				{Label: "1 week", Value: 7},
			},
		},
		{
			ID:   "max-id",
			Name: domain.CatalogMaximumDuration,
			Unit: domain.DurationUnitWeeks,
			Options: []domain.DurationOption{
				{Label: "1 week", Value: 1},
				{Label: "2 weeks", Value: 2},
				{Label: "4 weeks", Value: 4},
			},
		},
	})
}

func TestResolve_Canonical(t *testing.T) {
	resolved := Resolve(domain.DaysReference(5), nil, domain.CatalogMinimumDuration, 1)
	assert.Equal(t, domain.ResolvedDuration{Type: "", Count: 5, Label: "5"}, resolved)
}

func TestResolve_CatalogPointer(t *testing.T) {
	catalog := testCatalog()

	t.Run("Matching option uses its label", func(t *testing.T) {
		resolved := Resolve(domain.CatalogReference("notice-id", 24), catalog, domain.CatalogAdvanceNotice, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "hour", Count: 24, Label: "1 day"}, resolved)
	})

	t.Run("Unlisted value synthesizes a label", func(t *testing.T) {
		resolved := Resolve(domain.CatalogReference("notice-id", 6), catalog, domain.CatalogAdvanceNotice, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "hour", Count: 6, Label: "6 hours"}, resolved)
	})

	t.Run("Unknown dropdown falls back to default", func(t *testing.T) {
		resolved := Resolve(domain.CatalogReference("gone", 24), catalog, domain.CatalogAdvanceNotice, 2)
		assert.Equal(t, domain.ResolvedDuration{Count: 2, Label: "2"}, resolved)
	})

	t.Run("Unknown dropdown falls back to legacy pair", func(t *testing.T) {
		ref := domain.CatalogReference("gone", 24).WithLegacyFallback("days", 3)
		resolved := Resolve(ref, catalog, domain.CatalogMinimumDuration, 1)
		assert.Equal(t, domain.ResolvedDuration{Type: "day", Count: 3, Label: "3 days"}, resolved)
	})
}

func TestResolve_Legacy(t *testing.T) {
	catalog := testCatalog()

	t.Run("Days against an hours catalog converts to 48", func(t *testing.T) {
		resolved := Resolve(domain.LegacyReference("days", 2), catalog, domain.CatalogAdvanceNotice, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "hour", Count: 48, Label: "2 days"}, resolved)
	})

	t.Run("Nearest option when no exact match", func(t *testing.T) {
		// 30 hours: |24-30| = 6 beats |48-30| = 18
		resolved := Resolve(domain.LegacyReference("hours", 30), catalog, domain.CatalogAdvanceNotice, 0)
		assert.Equal(t, 24, resolved.Count)
	})

	t.Run("Equal distance keeps the lowest index", func(t *testing.T) {
		// 2 days sits between 1 and 3
		resolved := Resolve(domain.LegacyReference("day", 2), catalog, domain.CatalogMinimumDuration, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "day", Count: 1, Label: "1 day"}, resolved)
	})

	t.Run("Month converts through 30 days", func(t *testing.T) {
		resolved := Resolve(domain.LegacyReference("month", 1), catalog, domain.CatalogMaximumDuration, 0)
		// 30 days = 4.29 weeks
		assert.Equal(t, domain.ResolvedDuration{Type: "week", Count: 4, Label: "4 weeks"}, resolved)
	})

	t.Run("No target catalog returns the pair itself", func(t *testing.T) {
		resolved := Resolve(domain.LegacyReference("weeks", 2), nil, domain.CatalogMaximumDuration, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "week", Count: 2, Label: "2 weeks"}, resolved)
	})

	t.Run("Oversized count picks the largest option", func(t *testing.T) {
		resolved := Resolve(domain.LegacyReference("months", 1<<59), catalog, domain.CatalogMaximumDuration, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "week", Count: 4, Label: "4 weeks"}, resolved)

		resolved = Resolve(domain.LegacyReference("days", domain.MaxDurationCount), catalog, domain.CatalogAdvanceNotice, 0)
		assert.Equal(t, domain.ResolvedDuration{Type: "hour", Count: 72, Label: "3 days"}, resolved)
	})

	t.Run("Unknown unit falls back to default", func(t *testing.T) {
		resolved := Resolve(domain.LegacyReference("fortnights", 2), catalog, domain.CatalogMaximumDuration, 7)
		assert.Equal(t, domain.ResolvedDuration{Count: 7, Label: "7"}, resolved)
	})
}

func TestResolve_Missing(t *testing.T) {
	resolved := Resolve(domain.DurationReference{}, testCatalog(), domain.CatalogMinimumDuration, 1)
	assert.Equal(t, domain.ResolvedDuration{Count: 1, Label: "1"}, resolved)
}
