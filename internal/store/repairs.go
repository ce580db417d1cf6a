package store

import (
	"fmt"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/shared"
)

// AddRepair opens a repair job against an existing vehicle. An InProgress
// job immediately pulls the vehicle off the floor: status Under Repair,
// repair cost set. Both tables change under one lock.
func (s *Store) AddRepair(r Repair) (*Repair, error) {
	if err := validateRepair(r); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vi, ok := s.vehicleIdx[r.VehicleNumber]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", shared.ErrNotFound, r.VehicleNumber)
	}

	s.repairSeq++
	r.ID = fmt.Sprintf("REP%03d", s.repairSeq)
	if r.Status == "" {
		r.Status = RepairPending
	}
	if r.Priority == "" {
		r.Priority = PriorityMedium
	}

	s.repairIdx[r.ID] = len(s.repairs)
	s.repairs = append(s.repairs, r)

	v := &s.vehicles[vi]
	switch r.Status {
	case RepairInProgress:
		v.Status = StatusUnderRepair
		v.RepairCost = r.Amount
		v.RepairState = RepairStateInProgress
	case RepairPending:
		v.RepairCost = r.Amount
		v.RepairState = RepairStatePending
	}

	out := r
	return &out, nil
}

// GetRepair returns a copy of the repair with the given id.
func (s *Store) GetRepair(id string) (*Repair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.repairIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: repair %s", shared.ErrNotFound, id)
	}
	out := s.repairs[i]
	return &out, nil
}

// UpdateRepairStatus moves a repair through its lifecycle and propagates
// the change to the referenced vehicle. Completion releases the vehicle
// (Available, repair state Completed); InProgress holds it Under Repair.
// This is the single place vehicle availability is driven from repairs.
func (s *Store) UpdateRepairStatus(id string, status RepairStatus, amount float64, endDate time.Time) (*Repair, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", shared.ErrValidation)
	}
	if !validRepairStatus(status) {
		return nil, fmt.Errorf("%w: unknown repair status %q", shared.ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.repairIdx[id]
	if !ok {
		return nil, fmt.Errorf("%w: repair %s", shared.ErrNotFound, id)
	}
	r := &s.repairs[i]

	if !transitionAllowed(r.Status, status) {
		return nil, fmt.Errorf("%w: repair %s cannot move from %s to %s", shared.ErrInvalidTransition, id, r.Status, status)
	}

	// Resolve the vehicle before touching anything so both tables move
	// together or not at all. A dangling reference is still reported as a
	// partial failure per the store contract.
	vi, ok := s.vehicleIdx[r.VehicleNumber]
	if !ok && (status == RepairCompleted || status == RepairInProgress) {
		return nil, fmt.Errorf("%w: repair %s references missing vehicle %s", shared.ErrPartialFailure, id, r.VehicleNumber)
	}

	r.Status = status
	r.Amount = amount
	if !endDate.IsZero() {
		r.EndDate = endDate
	}

	switch status {
	case RepairCompleted:
		v := &s.vehicles[vi]
		v.Status = StatusAvailable
		v.RepairState = RepairStateCompleted
		v.RepairCost = amount
	case RepairInProgress:
		v := &s.vehicles[vi]
		v.Status = StatusUnderRepair
		v.RepairState = RepairStateInProgress
		v.RepairCost = amount
	}

	out := *r
	return &out, nil
}

// RepairsByVehicle returns copies of every repair for the vehicle.
func (s *Store) RepairsByVehicle(number string) []Repair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Repair
	for _, r := range s.repairs {
		if r.VehicleNumber == number {
			out = append(out, r)
		}
	}
	return out
}

// transitionAllowed encodes the repair lifecycle. Completed and Cancelled
// are terminal; a same-status update is allowed so amounts and end dates
// can be corrected.
func transitionAllowed(from, to RepairStatus) bool {
	if from == to {
		return from != RepairCancelled
	}
	switch from {
	case RepairPending:
		return to == RepairInProgress || to == RepairCompleted || to == RepairCancelled
	case RepairInProgress:
		return to == RepairCompleted || to == RepairCancelled
	}
	return false
}

func validateRepair(r Repair) error {
	if r.VehicleNumber == "" {
		return fmt.Errorf("%w: vehicle number required", shared.ErrValidation)
	}
	if r.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", shared.ErrValidation)
	}
	if r.Status != "" && r.Status != RepairPending && r.Status != RepairInProgress {
		return fmt.Errorf("%w: new repairs start Pending or In Progress", shared.ErrValidation)
	}
	return nil
}

func validRepairStatus(st RepairStatus) bool {
	switch st {
	case RepairPending, RepairInProgress, RepairCompleted, RepairCancelled:
		return true
	}
	return false
}
