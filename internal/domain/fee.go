package domain

// FeeBreakdown is the itemised charge for an order. Every amount is rounded
// to 2 decimal places and Total = Subtotal + TaxAmount.
type FeeBreakdown struct {
	RentalFee       float64 `json:"rental_fee"`
	PlatformFee     float64 `json:"platform_fee"`
	TaxAmount       float64 `json:"tax_amount"`
	InsuranceAmount float64 `json:"insurance_amount"`
	DepositAmount   float64 `json:"deposit_amount"`
	Subtotal        float64 `json:"subtotal"`
	TotalAmount     float64 `json:"total_amount"`
}

// FeeInput is what a caller supplies to price a rental.
type FeeInput struct {
	RentalFee      float64 `json:"rental_fee" validate:"gte=0"`
	IsInsurance    bool    `json:"is_insurance"`
	RentalDays     int     `json:"rental_days" validate:"gte=1"`
	EquipmentValue float64 `json:"equipment_value" validate:"gte=0"`
}
