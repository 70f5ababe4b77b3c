package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/learnhub/internal/app/system/copyindicator"
	"github.com/dalemusser/learnhub/internal/app/system/viewsession"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Calling it again on the same request adds to the existing parameters.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// WithViewState attaches a fresh view-session state to r, bypassing the
// cookie middleware. The state is closed when the test ends.
func WithViewState(t *testing.T, r *http.Request) (*http.Request, *viewsession.State) {
	t.Helper()
	st := viewsession.NewState(copyindicator.DefaultTTL)
	t.Cleanup(st.Close)
	return viewsession.WithState(r, st), st
}

// DecodeJSON unmarshals the recorder body into v, failing the test on error.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response %q: %v", rec.Body.String(), err)
	}
}

// Render runs fn and swallows a panic from template rendering, which happens
// in handler tests because the template engine is not booted.
func Render(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
