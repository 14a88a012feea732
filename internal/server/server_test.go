package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okWebhook(c echo.Context) error {
	return c.String(http.StatusOK, "handled")
}

func TestNew(t *testing.T) {
	t.Run("returns error when webhook is nil", func(t *testing.T) {
		_, err := New(":0", nil, prometheus.NewRegistry(), zap.NewNop())
		assert.ErrorContains(t, err, "webhook handler cannot be nil")
	})

	t.Run("returns error when logger is nil", func(t *testing.T) {
		_, err := New(":0", okWebhook, prometheus.NewRegistry(), nil)
		assert.ErrorContains(t, err, "logger is required")
	})
}

func TestRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	srv, err := New(":0", okWebhook, reg, zap.NewNop())
	require.NoError(t, err)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test_total 1")
	})

	t.Run("webhook", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader("From=1&Body=hi"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "handled", rec.Body.String())
	})

	t.Run("webhook rejects GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, WebhookPath, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
