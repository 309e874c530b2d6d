package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/psgurav-dev/analytics-dashboard/internal/config"
	"github.com/psgurav-dev/analytics-dashboard/internal/handlers"
	"github.com/psgurav-dev/analytics-dashboard/internal/services"
)

func setupTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:        8080,
			Environment: "test",
			Version:     "1.0.0",
		},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit: config.RateLimitConfig{Global: 100},
		Dataset:   config.DatasetConfig{Size: 200, Seed: services.DefaultSeed, WindowDays: 30},
		StartTime: time.Now(),
	}

	logger := zap.NewNop()
	datasets := services.NewDatasetService(services.NewDatasetCache(), cfg.Dataset.Seed, cfg.Dataset.Window(), logger)

	h := &Handlers{
		Table:     handlers.NewTableHandler(datasets, cfg.Dataset.Size),
		Analytics: handlers.NewAnalyticsHandler(datasets, services.NewMetricsService(), cfg.Dataset.Size),
		Export:    handlers.NewExportHandler(datasets, services.NewExportService(","), cfg.Dataset.Size),
		Bulk:      handlers.NewBulkActionHandler(services.NewBulkActionService(services.FailurePolicy{}, nil, logger)),
	}

	srv := New(cfg, h, logger)
	srv.Setup()
	return srv
}

func TestServer_HealthCheck(t *testing.T) {
	srv := setupTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/health", nil)
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "1.0.0", resp["version"])
}

func TestServer_RoutesWired(t *testing.T) {
	srv := setupTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/v1/table-data", ""},
		{http.MethodGet, "/v1/analytics", ""},
		{http.MethodGet, "/v1/info", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			srv.Router().ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestServer_RequestIDHeader(t *testing.T) {
	srv := setupTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/health", nil)
	srv.Router().ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// A client-supplied request ID is preserved.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	srv.Router().ServeHTTP(w, req)
	assert.Equal(t, "test-request-id", w.Header().Get("X-Request-ID"))
}

func TestServer_RateLimitHeaders(t *testing.T) {
	srv := setupTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/health", nil)
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "99", w.Header().Get("X-RateLimit-Remaining"))
}
