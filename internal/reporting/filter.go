// Package reporting turns store snapshots into the numbers and series the
// dashboard shows. Everything here is pure: snapshots in, fresh values
// out, input order preserved.
package reporting

import (
	"strings"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/store"
)

// All is the sentinel that disables a single filter dimension.
const All = "All"

// Criteria narrows a vehicle snapshot. Zero values (and the All sentinel)
// are identity filters; active dimensions combine with logical AND.
type Criteria struct {
	Type   string
	Status string
	Model  string
	From   time.Time // inclusive purchase-date lower bound
	To     time.Time // inclusive purchase-date upper bound
	Search string    // case-insensitive substring over name, NIC, phone
}

// Vehicles returns the records matching c, in their original order. The
// input slice is never modified.
func Vehicles(records []store.Vehicle, c Criteria) []store.Vehicle {
	search := strings.ToLower(c.Search)
	out := make([]store.Vehicle, 0, len(records))
	for _, v := range records {
		if active(c.Type) && string(v.Type) != c.Type {
			continue
		}
		if active(c.Status) && string(v.Status) != c.Status {
			continue
		}
		if active(c.Model) && v.Model != c.Model {
			continue
		}
		if !c.From.IsZero() && v.PurchaseDate.Before(c.From) {
			continue
		}
		if !c.To.IsZero() && v.PurchaseDate.After(endOfDay(c.To)) {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// SupplierCriteria narrows a supplier snapshot.
type SupplierCriteria struct {
	Type      string
	Status    string
	MinRating float64
}

// Suppliers returns the records matching c, in their original order.
func Suppliers(records []store.Supplier, c SupplierCriteria) []store.Supplier {
	out := make([]store.Supplier, 0, len(records))
	for _, s := range records {
		if active(c.Type) && s.Type != c.Type {
			continue
		}
		if active(c.Status) && string(s.Status) != c.Status {
			continue
		}
		if c.MinRating > 0 && s.Rating < c.MinRating {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Repairs returns the repairs with the given status, or all of them when
// the status dimension is inactive.
func Repairs(records []store.Repair, status string) []store.Repair {
	if !active(status) {
		out := make([]store.Repair, len(records))
		copy(out, records)
		return out
	}
	out := make([]store.Repair, 0, len(records))
	for _, r := range records {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

func active(v string) bool {
	return v != "" && v != All
}

func matchesSearch(v store.Vehicle, search string) bool {
	return strings.Contains(strings.ToLower(v.CustomerName), search) ||
		strings.Contains(strings.ToLower(v.NIC), search) ||
		strings.Contains(strings.ToLower(v.Phone), search)
}

// endOfDay widens the upper bound so a date-only To still includes
// records stamped later that day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
