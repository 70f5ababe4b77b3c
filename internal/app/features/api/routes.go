package api

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /api.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/topics", h.List)
	r.Get("/topics/{id}", h.Get)
	return r
}
