package suppliers

type CreateSupplierRequest struct {
	CompanyName   string  `json:"company_name" validate:"required,max=100"`
	ContactPerson string  `json:"contact_person" validate:"max=100"`
	Type          string  `json:"type" validate:"required"`
	Address       string  `json:"address" validate:"max=200"`
	Phone         string  `json:"phone" validate:"max=15"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	TotalOrders   int     `json:"total_orders" validate:"gte=0"`
	Status        string  `json:"status,omitempty"`
}

type UpdateSupplierRequest struct {
	CompanyName   *string  `json:"company_name,omitempty" validate:"omitempty,max=100"`
	ContactPerson *string  `json:"contact_person,omitempty" validate:"omitempty,max=100"`
	Type          *string  `json:"type,omitempty"`
	Address       *string  `json:"address,omitempty" validate:"omitempty,max=200"`
	Phone         *string  `json:"phone,omitempty" validate:"omitempty,max=15"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	TotalOrders   *int     `json:"total_orders,omitempty" validate:"omitempty,gte=0"`
	Status        *string  `json:"status,omitempty"`
}
