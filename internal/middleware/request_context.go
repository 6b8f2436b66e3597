package middleware

import (
	"context"

	"gateway/domain"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

const (
	userIDKey        contextKey = "UserID"
	authorizationKey contextKey = "Authorization"
	requestBaseKey   contextKey = "RequestBase"
)

// NewRequestBaseMiddleware records the caller-facing scheme, host and
// path so handlers can build navigation links without touching fiber.
func NewRequestBaseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		userCtx = context.WithValue(userCtx, requestBaseKey, domain.RequestBase{
			Scheme: c.Protocol(),
			Host:   c.Hostname(),
			Path:   c.OriginalURL(),
		})

		c.SetUserContext(userCtx)
		return c.Next()
	}
}

// UserID returns the authenticated caller's id, empty on public routes.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// Authorization returns the caller's bearer token, empty on public routes.
func Authorization(ctx context.Context) string {
	authorization, _ := ctx.Value(authorizationKey).(string)
	return authorization
}

// RequestBase returns where the inbound request landed.
func RequestBase(ctx context.Context) domain.RequestBase {
	base, _ := ctx.Value(requestBaseKey).(domain.RequestBase)
	return base
}
