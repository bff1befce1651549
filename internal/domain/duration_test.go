package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationReference_UnmarshalJSON(t *testing.T) {
	t.Run("Plain number is canonical days", func(t *testing.T) {
		var ref DurationReference
		require.NoError(t, json.Unmarshal([]byte(`3`), &ref))
		days, ok := ref.Days()
		assert.True(t, ok)
		assert.Equal(t, 3, days)
	})

	t.Run("Legacy pair", func(t *testing.T) {
		var ref DurationReference
		require.NoError(t, json.Unmarshal([]byte(`{"type":"days","count":2}`), &ref))
		assert.Equal(t, ReferenceLegacy, ref.Kind())
		legacy, ok := ref.Legacy()
		assert.True(t, ok)
		assert.Equal(t, LegacyDuration{Type: "days", Count: 2}, legacy)
	})

	t.Run("Catalog pointer with legacy fallback", func(t *testing.T) {
		var ref DurationReference
		require.NoError(t, json.Unmarshal([]byte(`{"dropdownId":"abc","selectedValue":24,"type":"hours","count":24}`), &ref))
		assert.Equal(t, ReferenceCatalog, ref.Kind())
		pointer, _ := ref.Pointer()
		assert.Equal(t, CatalogPointer{DropdownID: "abc", SelectedValue: 24}, pointer)
		_, hasFallback := ref.Legacy()
		assert.True(t, hasFallback)
	})

	t.Run("Pointer without selected value falls to legacy", func(t *testing.T) {
		var ref DurationReference
		require.NoError(t, json.Unmarshal([]byte(`{"dropdownId":"abc","type":"weeks","count":1}`), &ref))
		assert.Equal(t, ReferenceLegacy, ref.Kind())
	})

	t.Run("Counts beyond the bound decode as missing", func(t *testing.T) {
		for _, raw := range []string{`4e18`, `{"type":"days","count":4e18}`, `{"dropdownId":"abc","selectedValue":1e300}`} {
			var ref DurationReference
			require.NoError(t, json.Unmarshal([]byte(raw), &ref), raw)
			assert.True(t, ref.IsMissing(), raw)
		}

		var ref DurationReference
		require.NoError(t, json.Unmarshal([]byte(`2147483647`), &ref))
		days, ok := ref.Days()
		assert.True(t, ok)
		assert.Equal(t, MaxDurationCount, days)
	})

	t.Run("Malformed shapes decode as missing", func(t *testing.T) {
		for _, raw := range []string{`null`, `"5"`, `-2`, `1.5`, `{}`, `{"type":"days"}`, `[1,2]`} {
			var ref DurationReference
			require.NoError(t, json.Unmarshal([]byte(raw), &ref), raw)
			assert.True(t, ref.IsMissing(), raw)
		}
	})
}

func TestDurationReference_MarshalRoundTrip(t *testing.T) {
	refs := []DurationReference{
		DaysReference(7),
		LegacyReference("hours", 12),
		CatalogReference("id-1", 2).WithLegacyFallback("days", 2),
		{},
	}

	for _, ref := range refs {
		t.Run(ref.String(), func(t *testing.T) {
			data, err := json.Marshal(ref)
			require.NoError(t, err)

			var decoded DurationReference
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, ref, decoded)
		})
	}
}

func TestDurationReference_Scan(t *testing.T) {
	var ref DurationReference
	require.NoError(t, ref.Scan([]byte(`{"type":"days","count":4}`)))
	assert.Equal(t, ReferenceLegacy, ref.Kind())

	require.NoError(t, ref.Scan(nil))
	assert.True(t, ref.IsMissing())

	assert.Error(t, ref.Scan(42))

	value, err := DurationReference{}.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestResolvedDuration_Days(t *testing.T) {
	tests := []struct {
		name     string
		resolved ResolvedDuration
		expected int
	}{
		{"Canonical", ResolvedDuration{Count: 5}, 5},
		{"Hours round up", ResolvedDuration{Type: "hour", Count: 30}, 2},
		{"Exact day in hours", ResolvedDuration{Type: "hour", Count: 48}, 2},
		{"Weeks", ResolvedDuration{Type: "week", Count: 2}, 14},
		{"Months", ResolvedDuration{Type: "month", Count: 1}, 30},
		{"Oversized months saturate", ResolvedDuration{Type: "month", Count: 1 << 60}, MaxDurationCount},
		{"Oversized canonical saturates", ResolvedDuration{Count: 1 << 60}, MaxDurationCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resolved.Days())
		})
	}
}

func TestResolvedDuration_Hours(t *testing.T) {
	assert.Equal(t, 48, ResolvedDuration{Count: 2}.Hours())
	assert.Equal(t, 12, ResolvedDuration{Type: "hour", Count: 12}.Hours())
	assert.Equal(t, 168, ResolvedDuration{Type: "week", Count: 1}.Hours())
	assert.Equal(t, MaxDurationCount, ResolvedDuration{Type: "day", Count: 1 << 60}.Hours())
}

func TestParseDurationUnit(t *testing.T) {
	unit, ok := ParseDurationUnit("Day")
	assert.True(t, ok)
	assert.Equal(t, DurationUnitDays, unit)
	assert.Equal(t, "day", unit.Singular())

	_, ok = ParseDurationUnit("years")
	assert.False(t, ok)
	_, ok = ParseDurationUnit("")
	assert.False(t, ok)
}

func TestSettingsPatch_Apply(t *testing.T) {
	settings := DefaultPercentageSettings()
	tax := 5.0
	insurance := 3.0
	SettingsPatch{TaxPercentage: &tax, InsurancePercentage: &insurance}.Apply(&settings)

	assert.Equal(t, 5.0, settings.TaxPercentage)
	assert.Equal(t, 3.0, *settings.InsurancePercentage)
	assert.Equal(t, 10.0, settings.AdminFeePercentage)
}
