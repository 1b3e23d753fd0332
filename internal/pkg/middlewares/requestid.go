package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/pkg/flog"
)

// RequestID repopulates the id the logger middleware assigned into
// ctx.Locals, where handlers can reach it without the logging context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
