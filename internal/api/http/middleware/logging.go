package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

// Logging logs HTTP requests and results.
type Logging struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(contextManager model.ContextManager, logger *logger.Logger) *Logging {
	return &Logging{contextManager: contextManager, logger: logger}
}

// Handle logs method, path, duration and status for each request and copies
// the request ID into the request context.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	requestID, _ := c.Locals(RequestIDLocalsKey).(string)
	if requestID != "" {
		c.SetUserContext(l.contextManager.SetRequestIDToContext(c.UserContext(), requestID))
	}

	l.logger.Info("HTTP request started",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", requestID,
		"start_time", start.Format(time.RFC3339))

	err := c.Next()
	duration := time.Since(start)

	status := c.Response().StatusCode()
	if err != nil {
		// The app ErrorHandler has not run yet.
		status = fiber.StatusInternalServerError
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}
	}

	l.logger.Info("HTTP request completed",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", requestID,
		"duration_ms", duration.Milliseconds(),
		"status", status)

	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID,
			"error", err.Error(),
			"status", status)
	}

	return err
}
