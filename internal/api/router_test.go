package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/persistorai/pipelinecheck/internal/api"
	"github.com/persistorai/pipelinecheck/internal/service"
)

func newTestDeps() *api.RouterDeps {
	log := testLogger()

	return &api.RouterDeps{
		Log:                  log,
		Pipelines:            service.NewPipelineService(log, 1000),
		CORSOrigins:          []string{"http://localhost:3000"},
		CORSAllowCredentials: true,
		Version:              "test",
		MaxBodyBytes:         1 << 10,
		RateLimit:            1000,
		RateBurst:            1000,
	}
}

func newFullRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewRouter(ctx, newTestDeps())
}

func TestRouter_ParseEndToEnd(t *testing.T) {
	h := newFullRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/pipelines/parse",
		strings.NewReader(`{"nodes":[{"id":"1"},{"id":"2"}],"edges":[{"source":"1","target":"2"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if got := w.Body.String(); got != `{"num_nodes":2,"num_edges":1,"is_dag":true}` {
		t.Errorf("unexpected body %s", got)
	}

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin: got %q", got)
	}

	if got := w.Header().Get("X-Request-ID"); got == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newFullRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/pipelines/parse", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials: got %q", got)
	}
}

func TestRouter_CORSPreflightConfiguredHeaders(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	deps := newTestDeps()
	deps.CORSAllowHeaders = []string{"Content-Type", "X-Flow-Session"}
	h := api.NewRouter(ctx, deps)

	req := httptest.NewRequest(http.MethodOptions, "/pipelines/parse", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Flow-Session")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	allowed := w.Header().Get("Access-Control-Allow-Headers")
	for _, want := range []string{"X-Flow-Session", "X-Request-Id"} {
		if !strings.Contains(allowed, want) {
			t.Errorf("Access-Control-Allow-Headers %q missing %q", allowed, want)
		}
	}
}

func TestRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	h := newFullRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Origin", "http://evil.example")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRouter_PingAndHealth(t *testing.T) {
	h := newFullRouter(t)

	if w := doRequest(h, http.MethodGet, "/", ""); w.Code != http.StatusOK || w.Body.String() != `{"Ping":"Pong"}` {
		t.Errorf("ping: got %d %s", w.Code, w.Body.String())
	}

	if w := doRequest(h, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("health: got %d", w.Code)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := newFullRouter(t)

	w := doRequest(h, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	if body := decodeError(t, w.Body.Bytes()); body.Code != api.ErrCodeNotFound || body.RequestID == "" {
		t.Errorf("unexpected error body %+v", body)
	}
}

func TestRouter_BodyTooLarge(t *testing.T) {
	h := newFullRouter(t)

	body := `{"nodes":[` + strings.Repeat(`{"id":"xxxxxxxx"},`, 100) + `{"id":"y"}],"edges":[]}`
	w := doRequest(h, http.MethodPost, "/pipelines/parse", body)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func TestMetricsHandler(t *testing.T) {
	h := newFullRouter(t)
	doRequest(h, http.MethodPost, "/pipelines/parse", `{"nodes":[],"edges":[]}`)

	w := doRequest(api.NewMetricsHandler(), http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "pipelinecheck_pipelines_parsed_total") {
		t.Error("expected pipeline metrics in exposition")
	}
}
