package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/features/health"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.uber.org/zap"
)

type response struct {
	Status      string `json:"status"`
	Source      string `json:"source"`
	Topics      int    `json:"topics"`
	WithContent int    `json:"with_content"`
	Database    string `json:"database"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, resp
}

func TestServe_Embedded(t *testing.T) {
	h := health.NewHandler(testutil.EmbeddedHolder(t), nil, "embedded", zap.NewNop())

	rec, resp := serve(t, h)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if resp.Status != "ok" || resp.Source != "embedded" {
		t.Errorf("got status=%q source=%q", resp.Status, resp.Source)
	}
	if resp.Topics != 15 || resp.WithContent != 6 {
		t.Errorf("got topics=%d with_content=%d, want 15/6", resp.Topics, resp.WithContent)
	}
	if resp.Database != "" {
		t.Errorf("database should be omitted without a client, got %q", resp.Database)
	}
}

func TestServe_NoCatalog(t *testing.T) {
	h := health.NewHandler(catalog.NewHolder(nil), nil, "dir", zap.NewNop())

	rec, resp := serve(t, h)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if resp.Status != "error" {
		t.Errorf("status: got %q", resp.Status)
	}
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := health.NewHandler(testutil.EmbeddedHolder(t), db.Client(), "mongo", zap.NewNop())

	rec, resp := serve(t, h)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Database != "connected" {
		t.Errorf("database: got %q, want %q", resp.Database, "connected")
	}
}
