package reporting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/store"
)

func paymentsOf(amounts ...float64) []store.Vehicle {
	out := make([]store.Vehicle, len(amounts))
	for i, a := range amounts {
		out[i] = store.Vehicle{Payment: a}
	}
	return out
}

func TestAverageEqualsSumOverCount(t *testing.T) {
	records := paymentsOf(100, 200, 700)
	sum := Sum(records, func(v store.Vehicle) float64 { return v.Payment })
	avg := Average(records, func(v store.Vehicle) float64 { return v.Payment })
	require.Equal(t, sum/3, avg)
}

func TestAverageEmptyInputIsZero(t *testing.T) {
	avg := Average(nil, func(v store.Vehicle) float64 { return v.Payment })
	require.Equal(t, 0.0, avg)
}

func modelsOf(models ...string) []store.Vehicle {
	out := make([]store.Vehicle, len(models))
	for i, m := range models {
		out[i] = store.Vehicle{Model: m}
	}
	return out
}

func TestMode(t *testing.T) {
	model := func(v store.Vehicle) string { return v.Model }

	require.Equal(t, "Dio", Mode(modelsOf("Dio", "Pulsar", "Dio"), model))
	require.Equal(t, "", Mode(nil, model))

	// Ties resolve lexicographically, the same way every time.
	for i := 0; i < 20; i++ {
		require.Equal(t, "Dio", Mode(modelsOf("Pulsar", "Dio"), model))
	}
}

func TestTopNFullLengthIsSortAndResortIsNoop(t *testing.T) {
	records := paymentsOf(300, 100, 200)
	key := func(v store.Vehicle) float64 { return v.Payment }

	sorted := TopN(records, len(records), key, true)
	require.Equal(t, paymentsOf(300, 200, 100), sorted)
	require.Equal(t, sorted, TopN(sorted, len(sorted), key, true))
}

func TestTopNTiesKeepOriginalOrder(t *testing.T) {
	records := []store.Vehicle{
		{Number: "A", Payment: 100},
		{Number: "B", Payment: 100},
		{Number: "C", Payment: 200},
	}
	got := TopN(records, 3, func(v store.Vehicle) float64 { return v.Payment }, true)
	require.Equal(t, "C", got[0].Number)
	require.Equal(t, "A", got[1].Number)
	require.Equal(t, "B", got[2].Number)
}

func TestTopNClampsN(t *testing.T) {
	records := paymentsOf(1, 2)
	key := func(v store.Vehicle) float64 { return v.Payment }
	require.Len(t, TopN(records, 10, key, true), 2)
	require.Empty(t, TopN(records, 0, key, true))
	require.Empty(t, TopN(records, -1, key, true))
}

func TestBreakdownOrdersByCountThenName(t *testing.T) {
	records := modelsOf("Pulsar", "Dio", "Pulsar", "Fz", "Dio", "Pulsar")
	got := Breakdown(records, func(v store.Vehicle) string { return v.Model })
	require.Equal(t, []Point{
		{Label: "Pulsar", Value: 3},
		{Label: "Dio", Value: 2},
		{Label: "Fz", Value: 1},
	}, got)
}
