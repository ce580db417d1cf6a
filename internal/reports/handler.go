// Package reports exposes the aggregate dashboard and sales analytics
// endpoints. Handlers snapshot the store once per request and hand the
// copy to the reporting service.
package reports

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dealerdesk/dealerdesk/internal/platform/httpx"
	"github.com/dealerdesk/dealerdesk/internal/reporting"
	"github.com/dealerdesk/dealerdesk/internal/reporting/export"
	"github.com/dealerdesk/dealerdesk/internal/shared"
	"github.com/dealerdesk/dealerdesk/internal/store"
)

type Handler struct {
	logger    *slog.Logger
	store     *store.Store
	reporting *reporting.Service
}

func NewHandler(logger *slog.Logger, st *store.Store, reports *reporting.Service) *Handler {
	return &Handler{
		logger:    logger,
		store:     st,
		reporting: reports,
	}
}

// Dashboard serves the month overview. The month defaults to the current
// one and accepts ?month=2006-01 to look back.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: month must be YYYY-MM", shared.ErrValidation))
			return
		}
		ref = parsed
	}

	overview := h.reporting.MonthOverview(h.store.Snapshot(), ref)
	httpx.JSON(w, http.StatusOK, overview)
}

// Sales serves the date-range sales report. The range defaults to the
// trailing year.
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	report, err := h.reporting.SalesReport(r.Context(), h.store.Snapshot(), from, to)
	if err != nil {
		h.logger.Error("sales report failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

// SalesCSV streams the same report as a CSV download.
func (h *Handler) SalesCSV(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	report, err := h.reporting.SalesReport(r.Context(), h.store.Snapshot(), from, to)
	if err != nil {
		h.logger.Error("sales export failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sales_report.csv"`)
	if err := export.SalesCSV(w, report); err != nil {
		h.logger.Error("sales csv stream failed", slog.Any("error", err))
	}
}

// Suppliers serves the supplier overview with the same filters the
// listing accepts.
func (h *Handler) Suppliers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := reporting.SupplierCriteria{
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}
	overview := h.reporting.SupplierOverview(h.store.Snapshot(), criteria)
	httpx.JSON(w, http.StatusOK, overview)
}

// Repairs serves the repair workload summary.
func (h *Handler) Repairs(w http.ResponseWriter, r *http.Request) {
	overview := h.reporting.RepairOverview(h.store.Snapshot())
	httpx.JSON(w, http.StatusOK, overview)
}

func dateRange(r *http.Request) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(-1, 0, 0)

	q := r.URL.Query()
	if raw := q.Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: from must be YYYY-MM-DD", shared.ErrValidation)
		}
		from = parsed
	}
	if raw := q.Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: to must be YYYY-MM-DD", shared.ErrValidation)
		}
		to = parsed
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to precedes from", shared.ErrValidation)
	}
	return from, to, nil
}
