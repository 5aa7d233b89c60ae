package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
)

// Pinger reports whether the database accepts queries.
type Pinger interface {
	Ping(ctx context.Context) error
}

// System serves the health, readiness and API metadata endpoints.
type System struct {
	pinger  Pinger
	version string
	logger  *logger.Logger
	now     func() time.Time
}

func NewSystem(pinger Pinger, version string, logger *logger.Logger) *System {
	return &System{
		pinger:  pinger,
		version: version,
		logger:  logger,
		now:     time.Now,
	}
}

func (h *System) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Backend server is running",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *System) Ready(c *fiber.Ctx) error {
	if err := h.pinger.Ping(c.UserContext()); err != nil {
		h.logger.Warn("System handler: database is not ready",
			"error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "UNAVAILABLE",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "OK"})
}

func (h *System) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "Users API",
		"version":     h.version,
		"description": "User management API with REST (v1) and GraphQL (v2) endpoints",
		"endpoints": fiber.Map{
			"v1": fiber.Map{
				"users":      "GET /api/v1/users",
				"user":       "GET /api/v1/users/:id",
				"createUser": "POST /api/v1/users",
				"updateUser": "PUT /api/v1/users/:id",
				"deleteUser": "DELETE /api/v1/users/:id",
			},
			"v2": fiber.Map{
				"graphql": "POST /api/v2/graphql",
			},
		},
	})
}
