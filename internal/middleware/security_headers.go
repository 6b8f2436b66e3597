package middleware

import (
	"context"
	"strings"

	"gateway/pkg/httperror"

	"github.com/gofiber/fiber/v2"
)

// NewSecurityHeadersMiddleware gates the protected routes. Token
// verification is the platform's job; by the time a request reaches the
// gateway the caller identity arrives as forwarded headers, and the
// bearer token is relayed untouched so the upstreams apply their own
// authorization.
func NewSecurityHeadersMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get("User-ID"))
		authorization := strings.TrimSpace(c.Get("Authorization"))

		if userID == "" || authorization == "" {
			return unauthorized(c)
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		userCtx = context.WithValue(userCtx, userIDKey, userID)
		userCtx = context.WithValue(userCtx, authorizationKey, authorization)

		c.SetUserContext(userCtx)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	err := httperror.Unauthorized(
		"gateway.security_headers.unauthorized",
		"Security headers mismatch",
		nil,
	)

	return c.Status(err.Status).JSON(fiber.Map{
		"code":    err.Code,
		"message": err.Message,
	})
}
