package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedDeterministicPerSeed(t *testing.T) {
	a := New()
	b := New()
	opts := SeedOptions{Seed: 42, Vehicles: 50, Suppliers: 10, Year: 2025}
	require.NoError(t, Seed(a, opts))
	require.NoError(t, Seed(b, opts))

	sa, sb := a.Snapshot(), b.Snapshot()
	require.Equal(t, sa.Vehicles, sb.Vehicles)
	require.Equal(t, sa.Customers, sb.Customers)
	require.Equal(t, sa.Repairs, sb.Repairs)
	require.Equal(t, sa.Suppliers, sb.Suppliers)
}

func TestSeedProducesConsistentTables(t *testing.T) {
	s := New()
	require.NoError(t, Seed(s, SeedOptions{Seed: 7, Vehicles: 80, Suppliers: 12, Year: 2025}))

	snap := s.Snapshot()
	require.Len(t, snap.Vehicles, 80)
	require.Len(t, snap.Suppliers, 12)
	require.Len(t, snap.Customers, 80)

	for _, v := range snap.Vehicles {
		require.True(t, ModelMatchesType(v.Type, v.Model), "model %q for type %q", v.Model, v.Type)
		if v.RepairCost == 0 {
			require.Equal(t, RepairNone, v.RepairState)
		} else {
			require.NotEqual(t, RepairNone, v.RepairState)
		}
		require.Equal(t, 2025, v.PurchaseDate.Year())
	}

	// Every vehicle under repair got a matching repair job.
	underRepair := 0
	for _, v := range snap.Vehicles {
		if v.Status == StatusUnderRepair {
			underRepair++
		}
	}
	require.Len(t, snap.Repairs, underRepair)
	for _, r := range snap.Repairs {
		_, err := s.GetVehicle(r.VehicleNumber)
		require.NoError(t, err)
	}

	for _, sup := range snap.Suppliers {
		require.True(t, ValidSupplierRating(sup.Rating), "rating %v", sup.Rating)
	}
}
