package repairs

import (
	"fmt"
	"log/slog"
	"net/http"
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

// List returns repairs, optionally filtered by status, plus the workload
// summary shown above the table.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	matched := reporting.Repairs(snap.Repairs, r.URL.Query().Get("status"))

	active := 0
	var activeValue float64
	for _, rep := range snap.Repairs {
		if rep.Status == store.RepairPending || rep.Status == store.RepairInProgress {
			active++
			activeValue += rep.Amount
		}
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"repairs":      matched,
		"total":        len(matched),
		"active":       active,
		"active_value": activeValue,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	rep, err := h.store.GetRepair(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, rep)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRepairRequest
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

	rep, err := h.store.AddRepair(store.Repair{
		VehicleNumber: req.VehicleNumber,
		StartDate:     start,
		EndDate:       end,
		Details:       req.Details,
		Location:      req.Location,
		Amount:        req.Amount,
		Status:        store.RepairStatus(req.Status),
		Priority:      store.RepairPriority(req.Priority),
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("repair job created",
		slog.String("id", rep.ID),
		slog.String("vehicle", rep.VehicleNumber),
		slog.String("status", string(rep.Status)))
	httpx.JSON(w, http.StatusCreated, rep)
}

// UpdateStatus moves a repair through its lifecycle. Completion releases
// the vehicle; the store handles the cross-table sync atomically.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateRepairRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %v", shared.ErrValidation, err))
		return
	}

	id := chi.URLParam(r, "id")
	rep, err := h.store.UpdateRepairStatus(id, store.RepairStatus(req.Status), req.Amount, req.EndDate)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("repair status updated",
		slog.String("id", id),
		slog.String("status", string(rep.Status)))
	httpx.JSON(w, http.StatusOK, rep)
}
