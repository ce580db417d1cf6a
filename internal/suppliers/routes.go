package suppliers

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/suppliers", h.List)
	r.Post("/suppliers", h.Create)
	r.Get("/suppliers/{id}", h.Show)
	r.Patch("/suppliers/{id}", h.Update)
	r.Delete("/suppliers/{id}", h.Delete)
}
