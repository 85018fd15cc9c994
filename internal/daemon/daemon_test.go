package daemon

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/docdb-remediator/telemetry"
)

func TestHealthEndpoint(t *testing.T) {
	d := New(nil, telemetry.NewLogger("test"), Config{MetricsPort: 0})
	server := d.metricsServer()

	for _, path := range []string{"/health", "/-/healthy", "/-/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)
		body, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "ok")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	d := New(nil, telemetry.NewLogger("test"), Config{MetricsPort: 0})
	server := d.metricsServer()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
