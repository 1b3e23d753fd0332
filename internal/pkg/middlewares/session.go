package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sakelien.dev/scenario-backend/internal/pkg/flog"
	"sakelien.dev/scenario-backend/internal/pkg/identity"
	"sakelien.dev/scenario-backend/internal/pkg/session"
)

// SessionRefresh rotates the caller's session when a refresh token cookie is
// present. Refresh failures only get a debug log: an expired or revoked
// session must never block a route, the route's own auth check decides.
func SessionRefresh(client *identity.Client) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		refreshToken := session.RefreshToken(ctx)
		if refreshToken == "" {
			return ctx.Next()
		}

		refreshed, err := client.RefreshSession(ctx.UserContext(), refreshToken)
		if err != nil {
			flog.DebugFrom(ctx).Err(err).Msg("session refresh failed")
			return ctx.Next()
		}

		session.Inject(ctx, refreshed)
		return ctx.Next()
	}
}
