// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/learnhub/internal/app/features/shared"
	"github.com/dalemusser/learnhub/internal/app/system/navigation"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No catalog needed; it just renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func isAPI(r *http.Request) bool {
	return r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/")
}

// NotFound is the router's fallback for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("no route", zap.String("path", r.URL.Path))
	if isAPI(r) {
		shared.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	Render(w, r, http.StatusNotFound, "Page Not Found", "We couldn't find that page.")
}

// MethodNotAllowed is the router's fallback for a known path with the wrong
// method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if isAPI(r) || r.Method != http.MethodGet {
		shared.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	Render(w, r, http.StatusMethodNotAllowed, "Not Allowed", "That action isn't available here.")
}

// Render shows the friendly error page with a link back to the catalog.
func Render(w http.ResponseWriter, r *http.Request, status int, title, msg string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, navigation.CatalogPath),
		Message: msg,
	}
	data.BackURL = navigation.CatalogBackURL(r)

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
