package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/shared"
)

func testVehicle(number string, customerID int64) Vehicle {
	return Vehicle{
		Number:        number,
		CustomerID:    customerID,
		CustomerName:  "Kamal Silva",
		Address:       "12/3, Galle Road, Dehiwala",
		NIC:           "853211234V",
		Phone:         "0771234567",
		Type:          TypeBike,
		Model:         "Dio",
		PurchaseDate:  time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Payment:       500000,
		PaymentMethod: PayCash,
		EmployeeID:    7,
		Status:        StatusAvailable,
	}
}

func TestAddVehicleDuplicateKey(t *testing.T) {
	s := New()
	_, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)

	_, err = s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.ErrorIs(t, err, shared.ErrDuplicateKey)
}

func TestAddVehicleCreatesCustomerImplicitly(t *testing.T) {
	s := New()
	v, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)
	require.NotZero(t, v.CustomerID)

	c, err := s.GetCustomer(v.CustomerID)
	require.NoError(t, err)
	require.Equal(t, "Kamal Silva", c.Name)
	require.Equal(t, "0771234567", c.Phone)
}

func TestAddVehicleRejectsWrongModelForType(t *testing.T) {
	s := New()
	v := testVehicle("WP CAA 1234", 0)
	v.Model = "Auto Rickshaw"
	_, err := s.AddVehicle(v)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	s := New()
	st := StatusSold
	_, err := s.UpdateVehicle("NO SUCH 0000", VehicleUpdate{Status: &st})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMarkVehicleSold(t *testing.T) {
	s := New()
	_, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)

	v, err := s.MarkVehicleSold("WP CAA 1234", 550000)
	require.NoError(t, err)
	require.Equal(t, StatusSold, v.Status)
	require.Equal(t, 550000.0, v.Payment)

	// Selling twice is not a legal transition.
	_, err = s.MarkVehicleSold("WP CAA 1234", 0)
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
}

func TestDeleteCustomerCascadesToVehicles(t *testing.T) {
	s := New()
	v, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)

	removed, err := s.DeleteCustomer(v.CustomerID)
	require.NoError(t, err)
	require.Equal(t, []string{"WP CAA 1234"}, removed)

	_, err = s.GetCustomer(v.CustomerID)
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = s.GetVehicle("WP CAA 1234")
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.Empty(t, s.VehiclesByCustomer(v.CustomerID))
}

func TestUpdateCustomerPropagatesToVehicles(t *testing.T) {
	s := New()
	v, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)

	name := "Nimal Perera"
	phone := "0712345678"
	_, err = s.UpdateCustomer(v.CustomerID, CustomerUpdate{Name: &name, Phone: &phone})
	require.NoError(t, err)

	got, err := s.GetVehicle("WP CAA 1234")
	require.NoError(t, err)
	require.Equal(t, "Nimal Perera", got.CustomerName)
	require.Equal(t, "0712345678", got.Phone)
}

func TestCustomerIDNotReusedAfterDelete(t *testing.T) {
	s := New()
	c1, err := s.AddCustomer(Customer{Name: "Kamal Silva"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.DeleteCustomer(c1.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := s.AddCustomer(Customer{Name: "Nimal Perera"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c2.ID <= c1.ID {
		t.Fatalf("expected id above %d, got %d", c1.ID, c2.ID)
	}
}

func TestRepairCompletionReleasesVehicle(t *testing.T) {
	s := New()
	_, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)

	rep, err := s.AddRepair(Repair{
		VehicleNumber: "WP CAA 1234",
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Details:       "Brake overhaul",
		Location:      "Main Workshop",
		Amount:        25000,
		Status:        RepairInProgress,
	})
	require.NoError(t, err)
	require.Equal(t, "REP001", rep.ID)

	v, err := s.GetVehicle("WP CAA 1234")
	require.NoError(t, err)
	require.Equal(t, StatusUnderRepair, v.Status)
	require.Equal(t, RepairStateInProgress, v.RepairState)

	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	rep, err = s.UpdateRepairStatus("REP001", RepairCompleted, 30000, end)
	require.NoError(t, err)
	require.Equal(t, RepairCompleted, rep.Status)
	require.Equal(t, end, rep.EndDate)

	v, err = s.GetVehicle("WP CAA 1234")
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, v.Status)
	require.Equal(t, RepairStateCompleted, v.RepairState)
	require.Equal(t, 30000.0, v.RepairCost)
}

func TestRepairInvalidTransitions(t *testing.T) {
	s := New()
	_, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)
	_, err = s.AddRepair(Repair{VehicleNumber: "WP CAA 1234", Location: "Main Workshop", Amount: 10000})
	require.NoError(t, err)

	_, err = s.UpdateRepairStatus("REP001", RepairCancelled, 0, time.Time{})
	require.NoError(t, err)

	// Cancelled is terminal.
	_, err = s.UpdateRepairStatus("REP001", RepairInProgress, 10000, time.Time{})
	require.ErrorIs(t, err, shared.ErrInvalidTransition)
}

func TestRepairForUnknownVehicle(t *testing.T) {
	s := New()
	_, err := s.AddRepair(Repair{VehicleNumber: "NO SUCH 0000", Location: "Main Workshop"})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRepairCompletionPartialFailure(t *testing.T) {
	s := New()
	v, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)
	_, err = s.AddRepair(Repair{VehicleNumber: "WP CAA 1234", Location: "Main Workshop", Amount: 10000})
	require.NoError(t, err)

	// The cascade removes the vehicle out from under the open repair.
	_, err = s.DeleteCustomer(v.CustomerID)
	require.NoError(t, err)

	_, err = s.UpdateRepairStatus("REP001", RepairCompleted, 10000, time.Time{})
	require.ErrorIs(t, err, shared.ErrPartialFailure)

	// The repair itself must not have moved.
	rep, err := s.GetRepair("REP001")
	require.NoError(t, err)
	require.Equal(t, RepairPending, rep.Status)
}

func TestSupplierCRUD(t *testing.T) {
	s := New()
	sup, err := s.AddSupplier(Supplier{
		CompanyName: "Dimo Motors",
		Type:        "Vehicle Importer",
		Rating:      4.5,
		TotalOrders: 10,
	})
	require.NoError(t, err)
	require.Equal(t, "SUP001", sup.ID)
	require.Equal(t, SupplierActive, sup.Status)

	rating := 4.8
	sup, err = s.UpdateSupplier("SUP001", SupplierUpdate{Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, 4.8, sup.Rating)

	badRating := 4.6
	_, err = s.UpdateSupplier("SUP001", SupplierUpdate{Rating: &badRating})
	require.ErrorIs(t, err, shared.ErrValidation)

	require.NoError(t, s.DeleteSupplier("SUP001"))
	require.ErrorIs(t, s.DeleteSupplier("SUP001"), shared.ErrNotFound)

	// Counter keeps moving, the deleted id never comes back.
	sup, err = s.AddSupplier(Supplier{CompanyName: "Ideal Motors", Rating: 4.0})
	require.NoError(t, err)
	require.Equal(t, "SUP002", sup.ID)
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	_, err := s.AddVehicle(testVehicle("WP CAA 1234", 0))
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Vehicles[0].Payment = 1

	v, err := s.GetVehicle("WP CAA 1234")
	require.NoError(t, err)
	require.Equal(t, 500000.0, v.Payment)
}

func TestErrorsAreTyped(t *testing.T) {
	s := New()
	_, err := s.GetVehicle("missing")
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
