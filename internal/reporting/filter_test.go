package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/store"
)

func fixtureVehicles() []store.Vehicle {
	return []store.Vehicle{
		{
			Number: "WP CAA 1111", CustomerName: "Kamal Silva", NIC: "851234567V", Phone: "0771111111",
			Type: store.TypeBike, Model: "Dio", Status: store.StatusSold,
			PurchaseDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Payment: 500000,
			PaymentMethod: store.PayCash,
		},
		{
			Number: "WP CAB 2222", CustomerName: "Nimal Perera", NIC: "901234567V", Phone: "0712222222",
			Type: store.TypeBike, Model: "Pulsar", Status: store.StatusSold,
			PurchaseDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Payment: 700000,
			PaymentMethod: store.PayCreditCard,
		},
		{
			Number: "WP PA 3333", CustomerName: "Sunil Fernando", NIC: "781234567V", Phone: "0753333333",
			Type: store.TypeThreeWheeler, Model: "Auto Rickshaw", Status: store.StatusAvailable,
			PurchaseDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), Payment: 0,
			PaymentMethod: store.PayBankTransfer,
		},
	}
}

func TestVehiclesIdentityFilter(t *testing.T) {
	records := fixtureVehicles()
	got := Vehicles(records, Criteria{Type: All, Status: All, Model: All})
	require.Equal(t, records, got)

	got = Vehicles(records, Criteria{})
	require.Equal(t, records, got)
}

func TestVehiclesDoesNotMutateInput(t *testing.T) {
	records := fixtureVehicles()
	before := fixtureVehicles()
	_ = Vehicles(records, Criteria{Status: "Sold"})
	require.Equal(t, before, records)
}

func TestVehiclesPredicatesCombineWithAND(t *testing.T) {
	records := fixtureVehicles()
	got := Vehicles(records, Criteria{Type: "Bike", Status: "Sold", Model: "Pulsar"})
	require.Len(t, got, 1)
	require.Equal(t, "WP CAB 2222", got[0].Number)
}

func TestVehiclesSearchIsCaseInsensitive(t *testing.T) {
	records := fixtureVehicles()

	got := Vehicles(records, Criteria{Search: "kamal"})
	require.Len(t, got, 1)
	require.Equal(t, "WP CAA 1111", got[0].Number)

	got = Vehicles(records, Criteria{Search: "901234567v"})
	require.Len(t, got, 1)
	require.Equal(t, "WP CAB 2222", got[0].Number)

	got = Vehicles(records, Criteria{Search: "0753333333"})
	require.Len(t, got, 1)
	require.Equal(t, "WP PA 3333", got[0].Number)
}

func TestVehiclesDateRangeInclusive(t *testing.T) {
	records := fixtureVehicles()
	got := Vehicles(records, Criteria{
		From: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	require.Len(t, got, 2)
}

func TestVehiclesIdempotent(t *testing.T) {
	records := fixtureVehicles()
	c := Criteria{Type: "Bike", Status: "Sold"}
	once := Vehicles(records, c)
	twice := Vehicles(once, c)
	require.Equal(t, once, twice)
}

func TestSuppliersFilter(t *testing.T) {
	records := []store.Supplier{
		{ID: "SUP001", CompanyName: "Dimo Motors", Type: "Vehicle Importer", Status: store.SupplierActive, Rating: 4.8},
		{ID: "SUP002", CompanyName: "Ideal Motors", Type: "Parts Supplier", Status: store.SupplierActive, Rating: 4.0},
		{ID: "SUP003", CompanyName: "AMW Group", Type: "Vehicle Importer", Status: store.SupplierSuspended, Rating: 4.9},
	}

	got := Suppliers(records, SupplierCriteria{Type: "Vehicle Importer", MinRating: 4.5})
	require.Len(t, got, 2)
	require.Equal(t, "SUP001", got[0].ID)
	require.Equal(t, "SUP003", got[1].ID)

	got = Suppliers(records, SupplierCriteria{Status: "Active", MinRating: 4.5})
	require.Len(t, got, 1)
	require.Equal(t, "SUP001", got[0].ID)

	require.Equal(t, records, Suppliers(records, SupplierCriteria{Type: All, Status: All}))
}

func TestRepairsFilter(t *testing.T) {
	records := []store.Repair{
		{ID: "REP001", Status: store.RepairPending},
		{ID: "REP002", Status: store.RepairCompleted},
		{ID: "REP003", Status: store.RepairPending},
	}
	got := Repairs(records, "Pending")
	require.Len(t, got, 2)
	require.Equal(t, "REP001", got[0].ID)

	require.Equal(t, records, Repairs(records, All))
	require.Equal(t, records, Repairs(records, ""))
}
