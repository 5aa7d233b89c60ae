package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDLocalsKey is the fiber locals key holding the request ID.
const RequestIDLocalsKey = "requestid"

// NewRequestID assigns every request an ID, reusing an incoming X-Request-ID.
func NewRequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDLocalsKey,
	})
}
