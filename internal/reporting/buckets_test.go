package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dealerdesk/dealerdesk/internal/store"
)

func soldOn(day int, payment float64) store.Vehicle {
	return store.Vehicle{
		Status:       store.StatusSold,
		Payment:      payment,
		PurchaseDate: time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestDailySeriesSumsAndZeroFills(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []store.Vehicle{
		soldOn(5, 500000),
		soldOn(5, 700000),
	}

	series := Series(records, ByDay, MetricRevenue, ref)
	require.Len(t, series, 30) // June has 30 days

	require.Equal(t, "5", series[4].Label)
	require.Equal(t, 1200000.0, series[4].Value)
	for i, p := range series {
		if i == 4 {
			continue
		}
		require.Zero(t, p.Value, "day %s", p.Label)
	}
}

func TestDailySeriesEmptyInputKeepsFullDomain(t *testing.T) {
	ref := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	series := Series(nil, ByDay, MetricCount, ref)
	require.Len(t, series, 28)
	for _, p := range series {
		require.Zero(t, p.Value)
	}
}

func TestWeeklySeriesBinBoundaries(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []store.Vehicle{
		soldOn(1, 100), soldOn(7, 100), // week 1
		soldOn(8, 200), soldOn(14, 200), // week 2
		soldOn(15, 300), soldOn(21, 300), // week 3
		soldOn(22, 400), soldOn(30, 400), // week 4
	}

	series := Series(records, ByWeek, MetricRevenue, ref)
	require.Len(t, series, 4)
	require.Equal(t, []Point{
		{Label: "Week 1", Value: 200},
		{Label: "Week 2", Value: 400},
		{Label: "Week 3", Value: 600},
		{Label: "Week 4", Value: 800},
	}, series)
}

func TestMonthlySeriesCoversWholeYearInOrder(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []store.Vehicle{
		{Status: store.StatusSold, Payment: 100, PurchaseDate: time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)},
		{Status: store.StatusSold, Payment: 200, PurchaseDate: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)},
		// Other years never leak into the series.
		{Status: store.StatusSold, Payment: 999, PurchaseDate: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
	}

	series := Series(records, ByMonth, MetricRevenue, ref)
	require.Len(t, series, 12)
	require.Equal(t, "Jan", series[0].Label)
	require.Equal(t, 200.0, series[0].Value)
	require.Equal(t, "Dec", series[11].Label)
	require.Equal(t, 100.0, series[11].Value)
	for i := 1; i < 11; i++ {
		require.Zero(t, series[i].Value, series[i].Label)
	}
}

func TestCountMetric(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []store.Vehicle{soldOn(5, 500000), soldOn(5, 700000), soldOn(10, 100)}
	series := Series(records, ByDay, MetricCount, ref)
	require.Equal(t, 2.0, series[4].Value)
	require.Equal(t, 1.0, series[9].Value)
}
