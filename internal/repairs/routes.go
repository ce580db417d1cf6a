package repairs

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/repairs", h.List)
	r.Post("/repairs", h.Create)
	r.Get("/repairs/{id}", h.Show)
	r.Patch("/repairs/{id}", h.UpdateStatus)
}
