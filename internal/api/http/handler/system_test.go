package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/mocks"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/testutil"
)

func newSystemApp(p Pinger) *fiber.App {
	h := NewSystem(p, "1.2.3", testutil.MakeNoopLogger())
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	app := fiber.New()
	app.Get("/health", h.Health)
	app.Get("/health/ready", h.Ready)
	app.Get("/api", h.Info)
	return app
}

func TestSystem_Health(t *testing.T) {
	status, body := doRequest(t, newSystemApp(mocks.NewPinger(t)), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Backend server is running", body["message"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body["timestamp"])
}

func TestSystem_Ready(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		p := mocks.NewPinger(t)
		p.On("Ping", mock.Anything).Return(nil)

		status, body := doRequest(t, newSystemApp(p), http.MethodGet, "/health/ready", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "OK", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		p := mocks.NewPinger(t)
		p.On("Ping", mock.Anything).Return(errors.New("dial tcp: connection refused"))

		status, body := doRequest(t, newSystemApp(p), http.MethodGet, "/health/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "UNAVAILABLE", body["status"])
		assert.Equal(t, "dial tcp: connection refused", body["error"])
	})
}

func TestSystem_Info(t *testing.T) {
	status, body := doRequest(t, newSystemApp(mocks.NewPinger(t)), http.MethodGet, "/api", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.2.3", body["version"])
	endpoints := body["endpoints"].(map[string]any)
	assert.Contains(t, endpoints, "v1")
	assert.Contains(t, endpoints, "v2")
}
