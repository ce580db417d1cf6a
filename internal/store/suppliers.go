package store

import (
	"fmt"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/shared"
)

// SupplierUpdate carries the fields the supplier form may change.
type SupplierUpdate struct {
	CompanyName   *string
	ContactPerson *string
	Type          *string
	Address       *string
	Phone         *string
	Email         *string
	Rating        *float64
	TotalOrders   *int
	Status        *SupplierStatus
	LastDelivery  *time.Time
}

// AddSupplier appends a supplier. Ids come from a monotonic counter so a
// deleted supplier's id is never reissued.
func (s *Store) AddSupplier(sup Supplier) (*Supplier, error) {
	if err := validateSupplier(sup); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.supplierSeq++
	sup.ID = fmt.Sprintf("SUP%03d", s.supplierSeq)
	if sup.Status == "" {
		sup.Status = SupplierActive
	}
	s.supplierIdx[sup.ID] = len(s.suppliers)
	s.suppliers = append(s.suppliers, sup)

	out := sup
	return &out, nil
}

// GetSupplier returns a copy of the supplier with the given id.
func (s *Store) GetSupplier(id string) (*Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.supplierIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: supplier %s", shared.ErrNotFound, id)
	}
	out := s.suppliers[i]
	return &out, nil
}

// UpdateSupplier applies the non-nil fields of upd.
func (s *Store) UpdateSupplier(id string, upd SupplierUpdate) (*Supplier, error) {
	if upd.Rating != nil && !ValidSupplierRating(*upd.Rating) {
		return nil, fmt.Errorf("%w: rating %.1f is not in the permitted set", shared.ErrValidation, *upd.Rating)
	}
	if upd.TotalOrders != nil && *upd.TotalOrders < 0 {
		return nil, fmt.Errorf("%w: total orders must not be negative", shared.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.supplierIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: supplier %s", shared.ErrNotFound, id)
	}
	sup := &s.suppliers[i]

	if upd.CompanyName != nil {
		sup.CompanyName = *upd.CompanyName
	}
	if upd.ContactPerson != nil {
		sup.ContactPerson = *upd.ContactPerson
	}
	if upd.Type != nil {
		sup.Type = *upd.Type
	}
	if upd.Address != nil {
		sup.Address = *upd.Address
	}
	if upd.Phone != nil {
		sup.Phone = *upd.Phone
	}
	if upd.Email != nil {
		sup.Email = *upd.Email
	}
	if upd.Rating != nil {
		sup.Rating = *upd.Rating
	}
	if upd.TotalOrders != nil {
		sup.TotalOrders = *upd.TotalOrders
	}
	if upd.Status != nil {
		sup.Status = *upd.Status
	}
	if upd.LastDelivery != nil {
		sup.LastDelivery = *upd.LastDelivery
	}

	out := *sup
	return &out, nil
}

// DeleteSupplier removes the supplier. Suppliers reference nothing else,
// so no cascade applies.
func (s *Store) DeleteSupplier(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.supplierIdx[id]
	if !ok {
		return fmt.Errorf("%w: supplier %s", shared.ErrNotFound, id)
	}
	s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
	reindexSuppliers(s.suppliers, s.supplierIdx)
	return nil
}

func validateSupplier(sup Supplier) error {
	if sup.CompanyName == "" {
		return fmt.Errorf("%w: company name required", shared.ErrValidation)
	}
	if sup.Rating != 0 && !ValidSupplierRating(sup.Rating) {
		return fmt.Errorf("%w: rating %.1f is not in the permitted set", shared.ErrValidation, sup.Rating)
	}
	if sup.TotalOrders < 0 {
		return fmt.Errorf("%w: total orders must not be negative", shared.ErrValidation)
	}
	if sup.Status != "" && sup.Status != SupplierActive && sup.Status != SupplierPending && sup.Status != SupplierSuspended {
		return fmt.Errorf("%w: unknown supplier status %q", shared.ErrValidation, sup.Status)
	}
	return nil
}
