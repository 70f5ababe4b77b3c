// Package api serves the catalog as JSON.
package api

import (
	"errors"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/features/shared"
	"github.com/dalemusser/learnhub/internal/app/system/tabs"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for the JSON endpoints.
type Handler struct {
	Catalog *catalog.Holder
	Log     *zap.Logger
}

func NewHandler(holder *catalog.Holder, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: holder,
		Log:     logger,
	}
}

type listResponse struct {
	Query    string         `json:"query"`
	Category string         `json:"category"`
	Filtered bool           `json:"filtered"`
	Count    int            `json:"count"`
	Total    int            `json:"total"`
	Topics   []models.Topic `json:"topics"`
}

// List handles GET /api/topics?q=&category=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	c := h.Catalog.Catalog()
	res := c.Search(query.Get(r, "q"), query.Get(r, "category"))

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Query:    res.Query,
		Category: res.Category,
		Filtered: res.Filtered(),
		Count:    res.Count(),
		Total:    c.Len(),
		Topics:   res.Topics,
	})
}

type contentResponse struct {
	models.TopicContent
	Section string `json:"section,omitempty"`
}

// Get handles GET /api/topics/{id}. An optional ?tab= names the section the
// client intends to show; it must be a known section.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var section tabs.Section
	if tab := query.Get(r, "tab"); tab != "" {
		s, err := tabs.Parse(tab)
		if errors.Is(err, tabs.ErrUnknownSection) {
			shared.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		section = s
	}

	tc, ok := h.Catalog.Catalog().Resolve(id)
	if !ok {
		shared.WriteError(w, http.StatusNotFound, "topic not found")
		return
	}
	shared.WriteJSON(w, http.StatusOK, contentResponse{TopicContent: tc, Section: string(section)})
}
