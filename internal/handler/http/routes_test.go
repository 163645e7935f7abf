package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exo-explorer/internal/utils"
	"github.com/MKhiriev/exo-explorer/models"
)

func TestInit_UnknownRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/planets"},
		{name: "outside api", method: http.MethodGet, path: "/exoplanets"},
		{name: "wrong method on known path", method: http.MethodPatch, path: "/api/exoplanets/summary"},
		{name: "GET on a POST route", method: http.MethodGet, path: "/api/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, router, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			envelope := decode[models.ErrorResponse](t, rr)
			assert.Equal(t, http.StatusNotFound, envelope.Status)
			assert.Equal(t, "Not Found", envelope.Error)
		})
	}
}

func TestInit_VersionAndHealth(t *testing.T) {
	router := newTestHandler(t).Init()

	rr := serve(t, router, http.MethodGet, "/api/version", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, versionResponse{Version: "v1.2.3", Date: "2026-10-01", Commit: "abc123"}, decode[versionResponse](t, rr))

	rr = serve(t, router, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "UP", decode[map[string]string](t, rr)["status"])
}

func TestInit_TraceIDIsEchoed(t *testing.T) {
	router := newTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-42")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-42", rr.Header().Get(utils.TraceIDHeader))

	rr = serve(t, router, http.MethodGet, "/api/health", "", nil)
	assert.NotEmpty(t, rr.Header().Get(utils.TraceIDHeader))
}

func TestInit_GzipCatalog(t *testing.T) {
	router := newTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/exoplanets", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Proxima Centauri b")
}

func TestInit_AuthRateLimit(t *testing.T) {
	router := newTestHandler(t).Init()

	var last int
	for range authRequestsPerMinute + 1 {
		last = serve(t, router, http.MethodPost, "/api/auth/login", "", `{`).Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)

	rr := serve(t, router, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code, "only the auth group is limited")
}
