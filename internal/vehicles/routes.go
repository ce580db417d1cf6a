package vehicles

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/vehicles", h.List)
	r.Post("/vehicles", h.Create)
	r.Get("/vehicles/{number}", h.Show)
	r.Patch("/vehicles/{number}", h.Update)
	r.Post("/vehicles/{number}/sell", h.Sell)
	r.Post("/vehicles/{number}/repairs", h.SubmitRepair)
}
