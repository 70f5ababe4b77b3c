// Package topic serves the topic detail page and its copy-to-clipboard
// endpoints.
package topic

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/features/shared"
	"github.com/dalemusser/learnhub/internal/app/system/navigation"
	"github.com/dalemusser/learnhub/internal/app/system/tabs"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/learnhub/internal/app/system/viewsession"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// suggestLimit caps the "did you mean" list on the not-found page.
const suggestLimit = 3

// Handler holds dependencies needed to serve topic pages.
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

// Show handles GET /topic/{id}.
//
// The active tab is kept per view session. ?tab=<section> switches it; an
// unknown section is ignored and the current one stays active.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c := h.Catalog.Catalog()

	tc, ok := c.Resolve(id)
	if !ok {
		h.notFound(w, r, c, id)
		return
	}

	// Page state is only created once the reader picks a tab; a plain
	// first visit renders the overview without allocating any.
	section := tabs.Overview
	copied := map[string]bool{}
	tab := query.Get(r, "tab")
	st, ok := viewsession.Lookup(r)
	if !ok && tab != "" {
		st, ok = viewsession.Ensure(r), true
	}
	if ok {
		section = st.Open(id)
		if tab != "" {
			s, err := st.Select(id, tab)
			if errors.Is(err, tabs.ErrUnknownSection) {
				h.Log.Debug("ignoring unknown tab",
					zap.String("topic", id),
					zap.String("tab", tab))
			}
			section = s
		}
		copied = st.CopiedSet(id)
	}

	data := buildPage(r, c, tc, section, copied)
	templates.Render(w, r, "topic", data)
}

type notFoundData struct {
	viewdata.BaseVM
	ID          string
	Suggestions []linkVM
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, c *catalog.Catalog, id string) {
	h.Log.Info("topic not found", zap.String("topic", id))

	data := notFoundData{
		BaseVM: viewdata.NewBaseVM(r, "Topic Not Found", navigation.CatalogPath),
		ID:     id,
	}
	data.BackURL = navigation.CatalogBackURL(r)
	for _, t := range c.Suggest(id, suggestLimit) {
		data.Suggestions = append(data.Suggestions, linkVM{Title: t.Title, URL: navigation.TopicURL(t.ID, "")})
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "topic_not_found", data)
}

type copyResponse struct {
	Code          string `json:"code,omitempty"`
	ExampleID     string `json:"example_id"`
	Copied        bool   `json:"copied"`
	RevertAfterMS int64  `json:"revert_after_ms,omitempty"`
}

// example resolves {id} and {n} to a code example.
func (h *Handler) example(r *http.Request) (string, int, models.CodeExample, bool) {
	id := chi.URLParam(r, "id")
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		return id, 0, models.CodeExample{}, false
	}
	tc, ok := h.Catalog.Catalog().Resolve(id)
	if !ok || n < 0 || n >= len(tc.CodeExamples) {
		return id, n, models.CodeExample{}, false
	}
	return id, n, tc.CodeExamples[n], true
}

// Copy handles POST /topic/{id}/examples/{n}/copy. It marks the example as
// copied in the caller's view session and returns the code for the browser to
// place on the clipboard.
func (h *Handler) Copy(w http.ResponseWriter, r *http.Request) {
	id, n, ex, ok := h.example(r)
	if !ok {
		shared.WriteError(w, http.StatusNotFound, "example not found")
		return
	}

	st := viewsession.Ensure(r)
	exampleID := models.ExampleID(n)
	st.MarkCopied(id, exampleID)

	shared.WriteJSON(w, http.StatusOK, copyResponse{
		Code:          ex.Code,
		ExampleID:     exampleID,
		Copied:        true,
		RevertAfterMS: st.CopyTTL().Milliseconds(),
	})
}

// Copied handles GET /topic/{id}/examples/{n}/copied.
func (h *Handler) Copied(w http.ResponseWriter, r *http.Request) {
	id, n, _, ok := h.example(r)
	if !ok {
		shared.WriteError(w, http.StatusNotFound, "example not found")
		return
	}
	exampleID := models.ExampleID(n)
	st, ok := viewsession.Lookup(r)
	shared.WriteJSON(w, http.StatusOK, copyResponse{
		ExampleID: exampleID,
		Copied:    ok && st.Copied(id, exampleID),
	})
}
