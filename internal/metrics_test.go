package internal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMetricsEndpoint(t *testing.T) {
	metrics := NewMetrics()

	router := chi.NewRouter()
	router.Use(metrics.Middleware())
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	// Generate some traffic first.
	testReq := httptest.NewRequest("GET", "/ping", nil)
	testW := httptest.NewRecorder()
	router.ServeHTTP(testW, testReq)

	if testW.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", testW.Code)
	}
	if testW.Body.String() != "pong" {
		t.Errorf("Expected body 'pong', got '%s'", testW.Body.String())
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, metric := range []string{"http_requests_total", "http_request_duration_seconds"} {
		if !strings.Contains(body, metric) {
			t.Errorf("Expected metric '%s' not found in response", metric)
		}
	}
	if !strings.Contains(body, `path="/ping"`) {
		t.Error("Expected metrics to contain path label for /ping endpoint")
	}
}

func TestMetricsWithChiRoutePatterns(t *testing.T) {
	metrics := NewMetrics()

	router := chi.NewRouter()
	router.Use(metrics.Middleware())
	router.Get("/invoices/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	testReq := httptest.NewRequest("GET", "/invoices/123", nil)
	testW := httptest.NewRecorder()
	router.ServeHTTP(testW, testReq)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	// Should contain the route pattern, not the actual path.
	if !strings.Contains(w.Body.String(), `path="/invoices/{id}"`) {
		t.Error("Expected metrics to contain chi route pattern, not actual path")
	}
}

func TestMetricsDisabledByDefault(t *testing.T) {
	// ENABLE_METRICS unset: the server must not expose /metrics.
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
