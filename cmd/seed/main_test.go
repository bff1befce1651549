package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opeec-backend/internal/domain"
)

const seedYAML = `
settings:
  admin_fee_percentage: 12
  insurance_percentage: 8
catalog:
  - name: advance-notice
    unit: hours
    options:
      - label: 12 hours
        value: 12
      - label: 1 day
        value: 24
        recommended: true
`

func TestParseSeed(t *testing.T) {
	seed, err := parseSeed([]byte(seedYAML))
	require.NoError(t, err)

	patch := seed.settingsPatch()
	require.NotNil(t, patch.AdminFeePercentage)
	assert.Equal(t, 12.0, *patch.AdminFeePercentage)
	assert.Nil(t, patch.DepositPercentage)

	inputs := seed.catalogInputs()
	require.Len(t, inputs, 1)
	assert.Equal(t, domain.CatalogAdvanceNotice, inputs[0].Name)
	assert.Equal(t, domain.DurationUnitHours, inputs[0].Unit)
	require.Len(t, inputs[0].Options, 2)
	assert.Equal(t, 24, *inputs[0].Options[1].Value)
	assert.True(t, *inputs[0].Options[1].Recommended)
	assert.False(t, *inputs[0].Options[0].Recommended)
}

func TestParseSeed_Invalid(t *testing.T) {
	_, err := parseSeed([]byte("catalog: {"))
	assert.Error(t, err)
}
