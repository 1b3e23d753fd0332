package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sakelien.dev/scenario-backend/internal/pkg/hberr"
)

type AdminGate interface {
	IsAdmin(ctx *fiber.Ctx) bool
}

// RequireAdmin guards a route group behind the admin gate. Fail-closed: any
// doubt about the caller's identity yields 403.
func RequireAdmin(gate AdminGate) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !gate.IsAdmin(ctx) {
			return hberr.ErrForbidden
		}
		return ctx.Next()
	}
}
