package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/nagadco/tasnifoh/internal/application/dto"
)

// HeaderAPIToken carries the shared secret that gates mutating calls.
// The token is also accepted as a "token" query parameter for the
// admin page's fetch calls.
const HeaderAPIToken = "X-API-Token"

// TokenMiddleware compares the presented token against the configured
// secret in constant time. An empty configured secret allows every
// request (development mode, no token provisioned).
func TokenMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		token := c.Get(HeaderAPIToken)
		if token == "" {
			token = c.Query("token")
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1 {
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "غير مصرح: رمز الوصول مفقود أو غير صحيح",
		})
	}
}
