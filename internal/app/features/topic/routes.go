package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter mounted under /topic. copyMW wraps the copy
// endpoint only.
func Routes(h *Handler, copyMW ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.Show)
	r.With(copyMW...).Post("/{id}/examples/{n}/copy", h.Copy)
	r.Get("/{id}/examples/{n}/copied", h.Copied)
	return r
}
