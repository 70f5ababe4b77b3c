package home

import (
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/system/viewsession"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the catalog landing page.
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

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – topic catalog with search and category filter                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	// Returning to the catalog ends whatever topic page the browser had open.
	if st, ok := viewsession.Lookup(r); ok {
		st.Leave()
	}

	templates.Render(w, r, "catalog", h.page(r))
}

// page builds the catalog view from a single snapshot, so a reload between
// filtering and counting cannot mix two catalogs.
func (h *Handler) page(r *http.Request) pageData {
	c := h.Catalog.Catalog()
	res := c.Search(query.Get(r, "q"), query.Get(r, "category"))
	if res.Filtered() {
		h.Log.Debug("catalog search",
			zap.String("q", res.Query),
			zap.String("category", res.Category),
			zap.Int("matches", res.Count()))
	}
	return buildPage(r, c, res)
}
