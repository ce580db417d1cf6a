package customers

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=200"`
	NIC     string `json:"nic" validate:"max=20"`
	Phone   string `json:"phone" validate:"omitempty,len=10,numeric"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	NIC     *string `json:"nic,omitempty" validate:"omitempty,max=20"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
}
