package middlewares

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"sakelien.dev/scenario-backend/internal/pkg/session"
)

// EnrichSentry attaches the caller's identity subject to the sentry scope.
func EnrichSentry() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if userID := session.UserID(ctx); userID != "" {
			if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
				hub.Scope().SetUser(sentry.User{
					ID: userID,
				})
			}
		}
		return ctx.Next()
	}
}
