package stoich

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the formula endpoints onto the given router.
func RegisterRoutes(r chi.Router, h *Handlers) {
	r.Route("/formula", func(r chi.Router) {
		r.Post("/parse", h.ParseFormula)
		r.Post("/mass", h.CalculateMass)
	})
	r.Get("/elements/{symbol}", h.ElementWeight)
}
