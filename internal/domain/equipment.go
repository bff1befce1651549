package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusUnavailable EquipmentStatus = "UNAVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
)

type Equipment struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	DailyRentalFee  float64           `json:"daily_rental_fee"`
	EquipmentValue  float64           `json:"equipment_value"`
	Location        GeoPoint          `json:"location"`
	AdvanceNotice   DurationReference `json:"advance_notice"`
	MinimumDuration DurationReference `json:"minimum_duration"`
	MaximumDuration DurationReference `json:"maximum_duration"`
	Status          EquipmentStatus   `json:"status"`
	CreatedOn       time.Time         `json:"created_on"`
	UpdatedOn       time.Time         `json:"updated_on"`
}

// EquipmentInput is the create request shape.
type EquipmentInput struct {
	OwnerID         string            `json:"owner_id" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	Description     string            `json:"description"`
	DailyRentalFee  float64           `json:"daily_rental_fee" validate:"gte=0"`
	EquipmentValue  float64           `json:"equipment_value" validate:"gte=0"`
	Location        GeoPoint          `json:"location"`
	AdvanceNotice   DurationReference `json:"advance_notice"`
	MinimumDuration DurationReference `json:"minimum_duration"`
	MaximumDuration DurationReference `json:"maximum_duration"`
}

// EquipmentDurations are the duration references resolved for display.
type EquipmentDurations struct {
	AdvanceNotice   ResolvedDuration `json:"advance_notice"`
	MinimumDuration ResolvedDuration `json:"minimum_duration"`
	MaximumDuration ResolvedDuration `json:"maximum_duration"`
}

// LocationRecord is the slice of an equipment row the coordinate repair job works on.
type LocationRecord struct {
	EquipmentID string
	Location    GeoPoint
}

// DurationRecord is the slice of an equipment row the duration migration works on.
type DurationRecord struct {
	EquipmentID     string
	AdvanceNotice   DurationReference
	MinimumDuration DurationReference
	MaximumDuration DurationReference
}
