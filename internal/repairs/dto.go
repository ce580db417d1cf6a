package repairs

import "time"

type CreateRepairRequest struct {
	VehicleNumber string    `json:"vehicle_number" validate:"required,max=20"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Details       string    `json:"details" validate:"max=500"`
	Location      string    `json:"location" validate:"required"`
	Amount        float64   `json:"amount" validate:"gte=0"`
	Status        string    `json:"status,omitempty"`
	Priority      string    `json:"priority,omitempty"`
}

type UpdateRepairRequest struct {
	Status  string    `json:"status" validate:"required"`
	Amount  float64   `json:"amount" validate:"gte=0"`
	EndDate time.Time `json:"end_date"`
}
