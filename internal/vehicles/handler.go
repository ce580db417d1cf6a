package vehicles

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

// List applies the live filters (type, status, model, search) to a
// snapshot and returns matching vehicles plus per-status counts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	snap := h.store.Snapshot()
	matched := reporting.Vehicles(snap.Vehicles, reporting.Criteria{
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Model:  q.Get("model"),
		Search: q.Get("search"),
	})

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	pagination := shared.NewPagination(page, perPage, len(matched))

	start := (pagination.Page - 1) * pagination.PerPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"vehicles":     matched[start:end],
		"pagination":   pagination,
		"sold":         len(reporting.Vehicles(matched, reporting.Criteria{Status: string(store.StatusSold)})),
		"available":    len(reporting.Vehicles(matched, reporting.Criteria{Status: string(store.StatusAvailable)})),
		"under_repair": len(reporting.Vehicles(matched, reporting.Criteria{Status: string(store.StatusUnderRepair)})),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	v, err := h.store.GetVehicle(chi.URLParam(r, "number"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, v)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	v, err := h.store.AddVehicle(store.Vehicle{
		Number:        req.Number,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		NIC:           req.NIC,
		Phone:         req.Phone,
		Type:          store.VehicleType(req.Type),
		Model:         req.Model,
		PurchaseDate:  req.PurchaseDate,
		Payment:       req.Payment,
		PaymentMethod: store.PaymentMethod(req.PaymentMethod),
		EmployeeID:    req.EmployeeID,
		Status:        store.VehicleStatus(req.Status),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	h.logger.Info("vehicle added",
		slog.String("number", v.Number),
		slog.Int64("customer_id", v.CustomerID))
	httpx.JSON(w, http.StatusCreated, v)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateVehicleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	upd := store.VehicleUpdate{
		Payment:    req.Payment,
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
	}
	if req.Status != nil {
		st := store.VehicleStatus(*req.Status)
		upd.Status = &st
	}

	number := chi.URLParam(r, "number")
	v, err := h.store.UpdateVehicle(number, upd)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("vehicle updated", slog.String("number", number))
	httpx.JSON(w, http.StatusOK, v)
}

func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	var req SellVehicleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	number := chi.URLParam(r, "number")
	v, err := h.store.MarkVehicleSold(number, req.SalePrice)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("vehicle sold",
		slog.String("number", number),
		slog.Float64("payment", v.Payment))
	httpx.JSON(w, http.StatusOK, v)
}

// SubmitRepair opens a repair job straight from the vehicle actions tab.
// The job starts In Progress, so the store pulls the vehicle off the floor.
func (h *Handler) SubmitRepair(w http.ResponseWriter, r *http.Request) {
	var req SubmitRepairRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	end := req.EndDate
	if end.IsZero() {
		end = start.AddDate(0, 0, 7)
	}

	number := chi.URLParam(r, "number")
	rep, err := h.store.AddRepair(store.Repair{
		VehicleNumber: number,
		StartDate:     start,
		EndDate:       end,
		Details:       req.Details,
		Location:      req.Location,
		Amount:        req.Amount,
		Status:        store.RepairInProgress,
		Priority:      store.RepairPriority(req.Priority),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("vehicle submitted for repair",
		slog.String("number", number),
		slog.String("repair_id", rep.ID))
	httpx.JSON(w, http.StatusCreated, rep)
}
