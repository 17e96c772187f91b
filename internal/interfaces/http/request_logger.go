package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nagadco/tasnifoh/pkg/logger"
)

// LocalRequestID is the Fiber locals key for the per-request id.
const LocalRequestID = "request_id"

// RequestLogger assigns a request id, echoes it in X-Request-Id and
// logs one structured line per request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-Id", requestID)

		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
