package reporting

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dealerdesk/dealerdesk/internal/store"
)

// Service composes the pure aggregation primitives into the views the
// dashboard renders. It never touches the store directly; callers hand it
// a snapshot taken at request time.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// MonthOverview is the landing-page dashboard for one calendar month.
type MonthOverview struct {
	Month         string  `json:"month"`
	SalesCount    int     `json:"sales_count"`
	Revenue       float64 `json:"revenue"`
	AverageSale   float64 `json:"average_sale"`
	UnderRepair   int     `json:"under_repair"`
	TopModel      string  `json:"top_model"`
	DailyRevenue  []Point `json:"daily_revenue"`
	DailyCount    []Point `json:"daily_count"`
	WeeklyRevenue []Point `json:"weekly_revenue"`
	TypeBreakdown []Point `json:"type_breakdown"`
}

// MonthOverview computes the per-month dashboard over the given snapshot.
func (s *Service) MonthOverview(snap store.Snapshot, ref time.Time) MonthOverview {
	month := Vehicles(snap.Vehicles, Criteria{
		From: time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(ref.Year(), ref.Month(), daysInMonth(ref), 0, 0, 0, 0, time.UTC),
	})
	sold := Vehicles(month, Criteria{Status: string(store.StatusSold)})

	return MonthOverview{
		Month:         ref.Format("January 2006"),
		SalesCount:    len(sold),
		Revenue:       Sum(sold, vehiclePayment),
		AverageSale:   Average(sold, vehiclePayment),
		UnderRepair:   len(Vehicles(month, Criteria{Status: string(store.StatusUnderRepair)})),
		TopModel:      Mode(sold, vehicleModel),
		DailyRevenue:  Series(sold, ByDay, MetricRevenue, ref),
		DailyCount:    Series(sold, ByDay, MetricCount, ref),
		WeeklyRevenue: Series(sold, ByWeek, MetricRevenue, ref),
		TypeBreakdown: Breakdown(sold, vehicleType),
	}
}

// SalesReport is the date-range sales analytics page.
type SalesReport struct {
	From             string          `json:"from"`
	To               string          `json:"to"`
	TotalSales       int             `json:"total_sales"`
	TotalRevenue     float64         `json:"total_revenue"`
	AverageSale      float64         `json:"average_sale"`
	TopModel         string          `json:"top_model"`
	ModelBreakdown   []Point         `json:"model_breakdown"`
	PaymentBreakdown []Point         `json:"payment_breakdown"`
	TypeBreakdown    []Point         `json:"type_breakdown"`
	MonthlyRevenue   []Point         `json:"monthly_revenue"`
	MonthlyCount     []Point         `json:"monthly_count"`
	RecentSales      []store.Vehicle `json:"recent_sales"`
	Records          []store.Vehicle `json:"-"`
}

// SalesReport filters sold vehicles to [from, to] and computes the report.
// The independent aggregations fan out over the same immutable filtered
// set; ctx cancellation aborts the fan-out.
func (s *Service) SalesReport(ctx context.Context, snap store.Snapshot, from, to time.Time) (SalesReport, error) {
	sold := Vehicles(snap.Vehicles, Criteria{
		Status: string(store.StatusSold),
		From:   from,
		To:     to,
	})

	report := SalesReport{
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		TotalSales:   len(sold),
		TotalRevenue: Sum(sold, vehiclePayment),
		AverageSale:  Average(sold, vehiclePayment),
		TopModel:     Mode(sold, vehicleModel),
		Records:      sold,
	}

	ref := to
	if ref.IsZero() {
		ref = time.Now()
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.ModelBreakdown = Breakdown(sold, vehicleModel)
		return nil
	})
	g.Go(func() error {
		report.PaymentBreakdown = Breakdown(sold, func(v store.Vehicle) string { return string(v.PaymentMethod) })
		return nil
	})
	g.Go(func() error {
		report.TypeBreakdown = Breakdown(sold, vehicleType)
		return nil
	})
	g.Go(func() error {
		report.MonthlyRevenue = Series(sold, ByMonth, MetricRevenue, ref)
		report.MonthlyCount = Series(sold, ByMonth, MetricCount, ref)
		return nil
	})
	g.Go(func() error {
		report.RecentSales = TopN(sold, 3, func(v store.Vehicle) float64 { return float64(v.PurchaseDate.Unix()) }, true)
		return nil
	})
	if err := g.Wait(); err != nil {
		return SalesReport{}, err
	}

	if s.logger != nil {
		s.logger.Debug("sales report computed",
			slog.Int("records", len(sold)),
			slog.String("from", report.From),
			slog.String("to", report.To))
	}
	return report, nil
}

// SupplierOverview summarizes the supplier table after filtering.
type SupplierOverview struct {
	Total         int              `json:"total"`
	Active        int              `json:"active"`
	AverageRating float64          `json:"average_rating"`
	TotalOrders   float64          `json:"total_orders"`
	Top           []store.Supplier `json:"top"`
}

// SupplierOverview ranks and summarizes suppliers matching c.
func (s *Service) SupplierOverview(snap store.Snapshot, c SupplierCriteria) SupplierOverview {
	matched := Suppliers(snap.Suppliers, c)
	return SupplierOverview{
		Total:         len(matched),
		Active:        len(Suppliers(matched, SupplierCriteria{Status: string(store.SupplierActive)})),
		AverageRating: Average(matched, func(s store.Supplier) float64 { return s.Rating }),
		TotalOrders:   Sum(matched, func(s store.Supplier) float64 { return float64(s.TotalOrders) }),
		Top:           TopN(matched, 3, func(s store.Supplier) float64 { return s.Rating }, true),
	}
}

// RepairOverview summarizes the repair workload.
type RepairOverview struct {
	Active      int     `json:"active"`
	Completed   int     `json:"completed"`
	ActiveValue float64 `json:"active_value"`
}

// RepairOverview counts open and finished jobs and totals the open value.
func (s *Service) RepairOverview(snap store.Snapshot) RepairOverview {
	var overview RepairOverview
	for _, r := range snap.Repairs {
		switch r.Status {
		case store.RepairPending, store.RepairInProgress:
			overview.Active++
			overview.ActiveValue += r.Amount
		case store.RepairCompleted:
			overview.Completed++
		}
	}
	return overview
}

func vehiclePayment(v store.Vehicle) float64 { return v.Payment }
func vehicleModel(v store.Vehicle) string    { return v.Model }
func vehicleType(v store.Vehicle) string     { return string(v.Type) }
