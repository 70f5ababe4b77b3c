package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/features/shared"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Catalog *catalog.Holder
	Client  *mongo.Client // nil unless content is served from MongoDB
	Source  string
	Log     *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(holder *catalog.Holder, client *mongo.Client, source string, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: holder,
		Client:  client,
		Source:  source,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status      string `json:"status"`
	Source      string `json:"source"`
	Topics      int    `json:"topics"`
	WithContent int    `json:"with_content"`
	Database    string `json:"database,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "source":"embedded", "topics":15, "with_content":6 }
//
// With a Mongo source the database is pinged as well; on failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Source: h.Source}

	c := h.Catalog.Catalog()
	if c == nil {
		resp.Status = "error"
		resp.Message = "Catalog not loaded"
		shared.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.WithContent, resp.Topics = c.Coverage()

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			shared.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "connected"
	}

	shared.WriteJSON(w, http.StatusOK, resp)
}
