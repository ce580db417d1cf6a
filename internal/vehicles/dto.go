package vehicles

import "time"

type CreateVehicleRequest struct {
	Number        string    `json:"number" validate:"required,max=20"`
	Type          string    `json:"type" validate:"required"`
	Model         string    `json:"model" validate:"required,max=50"`
	PurchaseDate  time.Time `json:"purchase_date" validate:"required"`
	Payment       float64   `json:"payment" validate:"gte=0"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
	EmployeeID    int       `json:"employee_id" validate:"gte=0"`
	Status        string    `json:"status" validate:"required"`

	// Either reference an existing customer or describe a new one inline;
	// the intake form does the latter.
	CustomerID   int64  `json:"customer_id,omitempty" validate:"gte=0"`
	CustomerName string `json:"customer_name,omitempty" validate:"max=100"`
	Address      string `json:"address,omitempty" validate:"max=200"`
	NIC          string `json:"nic,omitempty" validate:"max=20"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
}

type UpdateVehicleRequest struct {
	Status     *string  `json:"status,omitempty"`
	Payment    *float64 `json:"payment,omitempty" validate:"omitempty,gte=0"`
	CustomerID *int64   `json:"customer_id,omitempty" validate:"omitempty,gt=0"`
	EmployeeID *int     `json:"employee_id,omitempty" validate:"omitempty,gt=0"`
}

type SellVehicleRequest struct {
	SalePrice float64 `json:"sale_price" validate:"gte=0"`
}

type SubmitRepairRequest struct {
	Details   string    `json:"details" validate:"max=500"`
	Location  string    `json:"location" validate:"required"`
	Amount    float64   `json:"amount" validate:"gte=0"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Priority  string    `json:"priority,omitempty"`
}
