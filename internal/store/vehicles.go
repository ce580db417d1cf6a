package store

import (
	"fmt"

	"github.com/dealerdesk/dealerdesk/internal/shared"
)

// VehicleUpdate carries the fields the update form may change. Nil fields
// are left untouched.
type VehicleUpdate struct {
	Status     *VehicleStatus
	Payment    *float64
	CustomerID *int64
	EmployeeID *int
}

// AddVehicle appends a vehicle. When CustomerID is zero a customer row is
// created from the denormalized contact columns, mirroring the intake form
// that registers buyer and vehicle together. When CustomerID references a
// customer that does not exist yet, the row is created so the reference
// invariant holds.
func (s *Store) AddVehicle(v Vehicle) (*Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicleIdx[v.Number]; ok {
		return nil, fmt.Errorf("%w: vehicle %s", shared.ErrDuplicateKey, v.Number)
	}

	if v.CustomerID == 0 {
		v.CustomerID = s.nextCustomerID()
	}
	if _, ok := s.customerIdx[v.CustomerID]; !ok {
		s.appendCustomer(Customer{
			ID:      v.CustomerID,
			Name:    v.CustomerName,
			Address: v.Address,
			NIC:     v.NIC,
			Phone:   v.Phone,
		})
	}

	if v.RepairCost == 0 {
		v.RepairState = RepairNone
	}

	s.vehicleIdx[v.Number] = len(s.vehicles)
	s.vehicles = append(s.vehicles, v)
	out := v
	return &out, nil
}

// GetVehicle returns a copy of the vehicle with the given number.
func (s *Store) GetVehicle(number string) (*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.vehicleIdx[number]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", shared.ErrNotFound, number)
	}
	out := s.vehicles[i]
	return &out, nil
}

// UpdateVehicle applies the non-nil fields of upd to the vehicle.
func (s *Store) UpdateVehicle(number string, upd VehicleUpdate) (*Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.vehicleIdx[number]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", shared.ErrNotFound, number)
	}
	v := &s.vehicles[i]

	if upd.Payment != nil {
		if *upd.Payment < 0 {
			return nil, fmt.Errorf("%w: payment must not be negative", shared.ErrValidation)
		}
		v.Payment = *upd.Payment
	}
	if upd.Status != nil {
		if !validVehicleStatus(*upd.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", shared.ErrValidation, *upd.Status)
		}
		v.Status = *upd.Status
	}
	if upd.CustomerID != nil {
		v.CustomerID = *upd.CustomerID
		if c, ok := s.customerIdx[*upd.CustomerID]; ok {
			cust := s.customers[c]
			v.CustomerName = cust.Name
			v.Address = cust.Address
			v.NIC = cust.NIC
			v.Phone = cust.Phone
		}
	}
	if upd.EmployeeID != nil {
		v.EmployeeID = *upd.EmployeeID
	}

	out := *v
	return &out, nil
}

// MarkVehicleSold moves an available vehicle to Sold. A positive salePrice
// replaces the recorded payment; zero keeps the original figure.
func (s *Store) MarkVehicleSold(number string, salePrice float64) (*Vehicle, error) {
	if salePrice < 0 {
		return nil, fmt.Errorf("%w: sale price must not be negative", shared.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.vehicleIdx[number]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", shared.ErrNotFound, number)
	}
	v := &s.vehicles[i]
	if v.Status != StatusAvailable {
		return nil, fmt.Errorf("%w: vehicle %s is %s, only available vehicles can be sold", shared.ErrInvalidTransition, number, v.Status)
	}
	v.Status = StatusSold
	if salePrice > 0 {
		v.Payment = salePrice
	}
	out := *v
	return &out, nil
}

func validateVehicle(v Vehicle) error {
	if v.Number == "" {
		return fmt.Errorf("%w: vehicle number required", shared.ErrValidation)
	}
	if v.Type != TypeBike && v.Type != TypeThreeWheeler {
		return fmt.Errorf("%w: unknown vehicle type %q", shared.ErrValidation, v.Type)
	}
	if v.Model != "" && !ModelMatchesType(v.Type, v.Model) {
		return fmt.Errorf("%w: model %q is not a %s model", shared.ErrValidation, v.Model, v.Type)
	}
	if v.Payment < 0 || v.RepairCost < 0 {
		return fmt.Errorf("%w: amounts must not be negative", shared.ErrValidation)
	}
	if v.Status != "" && !validVehicleStatus(v.Status) {
		return fmt.Errorf("%w: unknown status %q", shared.ErrValidation, v.Status)
	}
	return nil
}

func validVehicleStatus(st VehicleStatus) bool {
	switch st {
	case StatusAvailable, StatusSold, StatusUnderRepair:
		return true
	}
	return false
}
