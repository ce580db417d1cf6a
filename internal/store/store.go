// Package store holds the dealership tables in memory and owns every
// mutation against them. Cross-table bookkeeping (repair completion
// releasing a vehicle, customer deletion cascading to vehicles) runs under
// a single lock so readers never observe a half-applied change.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns the four in-memory tables. It is created per session and
// passed explicitly to whoever needs it; it is never a process-wide
// singleton. All reporting reads go through Snapshot.
type Store struct {
	mu sync.RWMutex

	id string

	vehicles  []Vehicle
	customers []Customer
	repairs   []Repair
	suppliers []Supplier

	vehicleIdx  map[string]int
	customerIdx map[int64]int
	repairIdx   map[string]int
	supplierIdx map[string]int

	customerSeq int64
	repairSeq   int
	supplierSeq int
}

// New returns an empty store with a fresh session identity.
func New() *Store {
	return &Store{
		id:          uuid.NewString(),
		vehicleIdx:  make(map[string]int),
		customerIdx: make(map[int64]int),
		repairIdx:   make(map[string]int),
		supplierIdx: make(map[string]int),
	}
}

// ID returns the session identity assigned at creation. It only exists to
// tag log lines.
func (s *Store) ID() string {
	return s.id
}

// Snapshot is an immutable copy of all four tables in insertion order.
type Snapshot struct {
	Vehicles  []Vehicle
	Customers []Customer
	Repairs   []Repair
	Suppliers []Supplier
}

// Snapshot copies every table under the read lock. Reporting operates on
// the copy and stays safe against concurrent mutation.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Vehicles:  make([]Vehicle, len(s.vehicles)),
		Customers: make([]Customer, len(s.customers)),
		Repairs:   make([]Repair, len(s.repairs)),
		Suppliers: make([]Supplier, len(s.suppliers)),
	}
	copy(snap.Vehicles, s.vehicles)
	copy(snap.Customers, s.customers)
	copy(snap.Repairs, s.repairs)
	copy(snap.Suppliers, s.suppliers)
	return snap
}

// Counts reports the size of each table.
func (s *Store) Counts() (vehicles, customers, repairs, suppliers int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles), len(s.customers), len(s.repairs), len(s.suppliers)
}

// reindex rebuilds the lookup maps after a removal compacted a slice.
func reindexVehicles(vehicles []Vehicle, idx map[string]int) {
	clear(idx)
	for i, v := range vehicles {
		idx[v.Number] = i
	}
}

func reindexCustomers(customers []Customer, idx map[int64]int) {
	clear(idx)
	for i, c := range customers {
		idx[c.ID] = i
	}
}

func reindexSuppliers(suppliers []Supplier, idx map[string]int) {
	clear(idx)
	for i, sup := range suppliers {
		idx[sup.ID] = i
	}
}
