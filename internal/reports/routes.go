package reports

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
	r.Get("/reports/sales", h.Sales)
	r.Get("/reports/sales.csv", h.SalesCSV)
	r.Get("/reports/suppliers", h.Suppliers)
	r.Get("/reports/repairs", h.Repairs)
}
