package domain

import "time"

// PercentageSettings holds the admin tuned rates that drive order pricing.
// Exactly one record is live at a time.
type PercentageSettings struct {
	AdminFeePercentage       float64   `json:"admin_fee_percentage" validate:"gte=0,lte=100"`
	InsurancePercentage      *float64  `json:"insurance_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	DailyInsuranceMultiplier float64   `json:"daily_insurance_multiplier" validate:"gte=0"`
	DepositPercentage        float64   `json:"deposit_percentage" validate:"gte=0,lte=100"`
	TaxPercentage            float64   `json:"tax_percentage" validate:"gte=0,lte=100"`
	StripeFeePercentage      float64   `json:"stripe_fee_percentage" validate:"gte=0,lte=100"`
	UpdatedOn                time.Time `json:"updated_on"`
}

// SettingsPatch is a partial update; nil fields keep their stored value.
type SettingsPatch struct {
	AdminFeePercentage       *float64 `json:"admin_fee_percentage"`
	InsurancePercentage      *float64 `json:"insurance_percentage"`
	DailyInsuranceMultiplier *float64 `json:"daily_insurance_multiplier"`
	DepositPercentage        *float64 `json:"deposit_percentage"`
	TaxPercentage            *float64 `json:"tax_percentage"`
	StripeFeePercentage      *float64 `json:"stripe_fee_percentage"`
}

// DefaultPercentageSettings returns the values applied by the first-ever upsert.
func DefaultPercentageSettings() PercentageSettings {
	insurance := 8.0
	return PercentageSettings{
		AdminFeePercentage:       10,
		InsurancePercentage:      &insurance,
		DailyInsuranceMultiplier: 0.5,
		DepositPercentage:        20,
		TaxPercentage:            13,
		StripeFeePercentage:      2.9,
	}
}

// Apply merges the patch into s.
func (p SettingsPatch) Apply(s *PercentageSettings) {
	if p.AdminFeePercentage != nil {
		s.AdminFeePercentage = *p.AdminFeePercentage
	}
	if p.InsurancePercentage != nil {
		v := *p.InsurancePercentage
		s.InsurancePercentage = &v
	}
	if p.DailyInsuranceMultiplier != nil {
		s.DailyInsuranceMultiplier = *p.DailyInsuranceMultiplier
	}
	if p.DepositPercentage != nil {
		s.DepositPercentage = *p.DepositPercentage
	}
	if p.TaxPercentage != nil {
		s.TaxPercentage = *p.TaxPercentage
	}
	if p.StripeFeePercentage != nil {
		s.StripeFeePercentage = *p.StripeFeePercentage
	}
}
