package customers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dealerdesk/dealerdesk/internal/platform/httpx"
	"github.com/dealerdesk/dealerdesk/internal/shared"
	"github.com/dealerdesk/dealerdesk/internal/store"
)

type Handler struct {
	logger   *slog.Logger
	store    *store.Store
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, st *store.Store) *Handler {
	return &Handler{
		logger:   logger,
		store:    st,
		validate: validator.New(),
	}
}

// List returns all customers, optionally narrowed by a case-insensitive
// search over name, NIC and phone.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))
	snap := h.store.Snapshot()

	matched := make([]store.Customer, 0, len(snap.Customers))
	for _, c := range snap.Customers {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.NIC), search) &&
			!strings.Contains(strings.ToLower(c.Phone), search) {
			continue
		}
		matched = append(matched, c)
	}

	withVehicles := 0
	owners := make(map[int64]bool, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		owners[v.CustomerID] = true
	}
	for _, c := range matched {
		if owners[c.ID] {
			withVehicles++
		}
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"customers":     matched,
		"total":         len(matched),
		"with_vehicles": withVehicles,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	c, err := h.store.GetCustomer(id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"customer": c,
		"vehicles": h.store.VehiclesByCustomer(id),
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	c, err := h.store.AddCustomer(store.Customer{
		Name:    req.Name,
		Address: req.Address,
		NIC:     req.NIC,
		Phone:   req.Phone,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("customer added", slog.Int64("id", c.ID), slog.String("name", c.Name))
	httpx.JSON(w, http.StatusCreated, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var req UpdateCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	c, err := h.store.UpdateCustomer(id, store.CustomerUpdate{
		Name:    req.Name,
		Address: req.Address,
		NIC:     req.NIC,
		Phone:   req.Phone,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("customer updated", slog.Int64("id", id))
	httpx.JSON(w, http.StatusOK, c)
}

// Delete removes the customer and cascades to their vehicles. The removed
// vehicle numbers come back in the response so the destructive side effect
// is visible to the caller.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	removed, err := h.store.DeleteCustomer(id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Warn("customer deleted with cascading vehicles",
		slog.Int64("id", id),
		slog.Int("vehicles_removed", len(removed)))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"deleted":          id,
		"vehicles_removed": removed,
	})
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: customer id must be numeric", shared.ErrValidation)
	}
	return id, nil
}
