package reporting

import (
	"fmt"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/store"
)

// Granularity selects the bucket width for a time series.
type Granularity string

const (
	// ByDay buckets per day of the reference month, 1..days-in-month.
	ByDay Granularity = "day"
	// ByWeek buckets the reference month into four bins: days 1-7, 8-14,
	// 15-21 and 22 to month end.
	ByWeek Granularity = "week"
	// ByMonth buckets per calendar month, Jan..Dec.
	ByMonth Granularity = "month"
)

// Metric selects what each bucket accumulates.
type Metric string

const (
	// MetricRevenue sums the payment amount per bucket.
	MetricRevenue Metric = "revenue"
	// MetricCount counts records per bucket.
	MetricCount Metric = "count"
)

// Point is one bucket of a series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Series buckets records by purchase date and returns one point per bucket
// in bucket order. Every bucket of the domain appears; buckets without
// data carry zero, so an empty input still yields the full domain. For
// ByDay and ByWeek the domain is the month of ref and records outside that
// month are ignored; ByMonth covers the whole year of ref.
func Series(records []store.Vehicle, g Granularity, m Metric, ref time.Time) []Point {
	switch g {
	case ByDay:
		return dailySeries(records, m, ref)
	case ByWeek:
		return weeklySeries(records, m, ref)
	default:
		return monthlySeries(records, m, ref)
	}
}

func dailySeries(records []store.Vehicle, m Metric, ref time.Time) []Point {
	days := daysInMonth(ref)
	totals := make([]float64, days+1)
	for _, v := range records {
		if v.PurchaseDate.Year() != ref.Year() || v.PurchaseDate.Month() != ref.Month() {
			continue
		}
		totals[v.PurchaseDate.Day()] += metricValue(v, m)
	}
	out := make([]Point, 0, days)
	for d := 1; d <= days; d++ {
		out = append(out, Point{Label: fmt.Sprintf("%d", d), Value: totals[d]})
	}
	return out
}

func weeklySeries(records []store.Vehicle, m Metric, ref time.Time) []Point {
	totals := make([]float64, 4)
	for _, v := range records {
		if v.PurchaseDate.Year() != ref.Year() || v.PurchaseDate.Month() != ref.Month() {
			continue
		}
		totals[weekBin(v.PurchaseDate.Day())] += metricValue(v, m)
	}
	out := make([]Point, 0, 4)
	for i := range totals {
		out = append(out, Point{Label: fmt.Sprintf("Week %d", i+1), Value: totals[i]})
	}
	return out
}

func monthlySeries(records []store.Vehicle, m Metric, ref time.Time) []Point {
	totals := make([]float64, 13)
	for _, v := range records {
		if v.PurchaseDate.Year() != ref.Year() {
			continue
		}
		totals[int(v.PurchaseDate.Month())] += metricValue(v, m)
	}
	out := make([]Point, 0, 12)
	for mo := 1; mo <= 12; mo++ {
		out = append(out, Point{Label: monthLabels[mo-1], Value: totals[mo]})
	}
	return out
}

func metricValue(v store.Vehicle, m Metric) float64 {
	if m == MetricCount {
		return 1
	}
	return v.Payment
}

// weekBin maps a day of month onto the 1-7 / 8-14 / 15-21 / 22-end scheme.
func weekBin(day int) int {
	if day > 21 {
		return 3
	}
	return (day - 1) / 7
}

func daysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
