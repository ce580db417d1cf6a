package store

import (
	"fmt"

	"github.com/dealerdesk/dealerdesk/internal/shared"
)

// CustomerUpdate carries the fields the customer form may change.
type CustomerUpdate struct {
	Name    *string
	Address *string
	NIC     *string
	Phone   *string
}

// AddCustomer appends a customer with a freshly allocated id.
func (s *Store) AddCustomer(c Customer) (*Customer, error) {
	if err := validateCustomer(c); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCustomerID()
	s.appendCustomer(c)
	out := c
	return &out, nil
}

// GetCustomer returns a copy of the customer with the given id.
func (s *Store) GetCustomer(id int64) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.customerIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", shared.ErrNotFound, id)
	}
	out := s.customers[i]
	return &out, nil
}

// UpdateCustomer applies the non-nil fields of upd and refreshes the
// denormalized contact columns on every vehicle the customer owns, keeping
// the two tables consistent in one critical section.
func (s *Store) UpdateCustomer(id int64, upd CustomerUpdate) (*Customer, error) {
	if upd.Phone != nil && !validPhone(*upd.Phone) {
		return nil, fmt.Errorf("%w: phone must be 10 digits", shared.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.customerIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", shared.ErrNotFound, id)
	}
	c := &s.customers[i]

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.NIC != nil {
		c.NIC = *upd.NIC
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}

	for j := range s.vehicles {
		if s.vehicles[j].CustomerID != id {
			continue
		}
		s.vehicles[j].CustomerName = c.Name
		s.vehicles[j].Address = c.Address
		s.vehicles[j].NIC = c.NIC
		s.vehicles[j].Phone = c.Phone
	}

	out := *c
	return &out, nil
}

// DeleteCustomer removes the customer and every vehicle referencing it.
// The cascade is destructive and not reversible; the removed vehicle
// numbers are returned so the caller can report what went with it.
func (s *Store) DeleteCustomer(id int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.customerIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", shared.ErrNotFound, id)
	}

	s.customers = append(s.customers[:i], s.customers[i+1:]...)
	reindexCustomers(s.customers, s.customerIdx)

	var removed []string
	kept := s.vehicles[:0]
	for _, v := range s.vehicles {
		if v.CustomerID == id {
			removed = append(removed, v.Number)
			continue
		}
		kept = append(kept, v)
	}
	s.vehicles = kept
	reindexVehicles(s.vehicles, s.vehicleIdx)

	return removed, nil
}

// VehiclesByCustomer returns copies of every vehicle owned by the customer.
func (s *Store) VehiclesByCustomer(id int64) []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Vehicle
	for _, v := range s.vehicles {
		if v.CustomerID == id {
			out = append(out, v)
		}
	}
	return out
}

// nextCustomerID allocates from the monotonic counter. Callers hold the lock.
func (s *Store) nextCustomerID() int64 {
	s.customerSeq++
	return s.customerSeq
}

// appendCustomer inserts without allocating an id. Callers hold the lock.
func (s *Store) appendCustomer(c Customer) {
	if c.ID > s.customerSeq {
		s.customerSeq = c.ID
	}
	s.customerIdx[c.ID] = len(s.customers)
	s.customers = append(s.customers, c)
}

func validateCustomer(c Customer) error {
	if c.Name == "" {
		return fmt.Errorf("%w: customer name required", shared.ErrValidation)
	}
	if c.Phone != "" && !validPhone(c.Phone) {
		return fmt.Errorf("%w: phone must be 10 digits", shared.ErrValidation)
	}
	return nil
}

func validPhone(p string) bool {
	if len(p) != 10 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
