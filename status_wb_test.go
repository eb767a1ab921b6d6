package devbelt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusHandler(t *testing.T) {
	t.Parallel()

	dc, err := InitialiseDefaultDependencies(context.Background(), &Config{
		ApplicationName: "devbelt",
		Environment:     TestEnv,
		HTTP:            HTTP{Port: 8080},
	})
	require.NoError(t, err)

	dc.RegisterTool("hash")

	handler := statusHandler(dc, time.Now().Add(-time.Minute))

	t.Run("status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, statusPath, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var status map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &status)
		require.NoError(t, err)

		assert.Equal(t, "online", status["status"])
		assert.Equal(t, "devbelt", status["applicationName"])
		assert.Equal(t, "test", status["environment"])
		assert.Equal(t, "1m0s", status["uptime"])
		assert.Equal(t, []any{"hash"}, status["tools"])
	})

	t.Run("metrics", func(t *testing.T) {
		t.Parallel()

		// trigger a request so the http metrics are present
		dc.WebRouter.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tools", nil))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, metricPath, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "devbelt_requests_total")
	})
}

func TestMetricSubsystem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev_belt_1", metricSubsystem("dev-belt.1"))
	assert.Equal(t, "devbelt", metricSubsystem("devbelt"))
}
