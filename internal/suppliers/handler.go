package suppliers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dealerdesk/dealerdesk/internal/platform/httpx"
	"github.com/dealerdesk/dealerdesk/internal/reporting"
	"github.com/dealerdesk/dealerdesk/internal/shared"
	"github.com/dealerdesk/dealerdesk/internal/store"
)

type Handler struct {
	logger    *slog.Logger
	store     *store.Store
	reporting *reporting.Service
	validate  *validator.Validate
}

func NewHandler(logger *slog.Logger, st *store.Store, reports *reporting.Service) *Handler {
	return &Handler{
		logger:    logger,
		store:     st,
		reporting: reports,
		validate:  validator.New(),
	}
}

// List filters suppliers by type, status and minimum rating, and attaches
// the overview stats (counts, average rating, top performers).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := reporting.SupplierCriteria{
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}
	if raw := q.Get("min_rating"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httpx.RespondError(w, fmt.Errorf("%w: min_rating must be numeric", shared.ErrValidation))
			return
		}
		criteria.MinRating = min
	}

	snap := h.store.Snapshot()
	matched := reporting.Suppliers(snap.Suppliers, criteria)
	overview := h.reporting.SupplierOverview(snap, criteria)

	httpx.JSON(w, http.StatusOK, map[string]any{
		"suppliers": matched,
		"overview":  overview,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sup, err := h.store.GetSupplier(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sup)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	sup, err := h.store.AddSupplier(store.Supplier{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Type:          req.Type,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		Rating:        req.Rating,
		LastDelivery:  time.Now(),
		TotalOrders:   req.TotalOrders,
		Status:        store.SupplierStatus(req.Status),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("supplier added",
		slog.String("id", sup.ID),
		slog.String("company", sup.CompanyName))
	httpx.JSON(w, http.StatusCreated, sup)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	upd := store.SupplierUpdate{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Type:          req.Type,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		Rating:        req.Rating,
		TotalOrders:   req.TotalOrders,
	}
	if req.Status != nil {
		st := store.SupplierStatus(*req.Status)
		upd.Status = &st
	}
	// Any edit counts as contact with the supplier.
	now := time.Now()
	upd.LastDelivery = &now

	id := chi.URLParam(r, "id")
	sup, err := h.store.UpdateSupplier(id, upd)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("supplier updated", slog.String("id", id))
	httpx.JSON(w, http.StatusOK, sup)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteSupplier(id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("supplier deleted", slog.String("id", id))
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
