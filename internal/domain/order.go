package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID          string `json:"id"`
	EquipmentID string `json:"equipment_id"`
	RenterID    string `json:"renter_id"`
	OwnerID     string `json:"owner_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	RentalDays  int    `json:"rental_days"`
	IsInsurance bool   `json:"is_insurance"`
	// Fee snapshot computed at creation time from the settings live then.
	Fees      FeeBreakdown `json:"fees"`
	Status    OrderStatus  `json:"status"`
	CreatedOn time.Time    `json:"created_on"`
}

type OrderInput struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	RenterID    string `json:"renter_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	IsInsurance bool   `json:"is_insurance"`
}
