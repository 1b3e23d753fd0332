package svr

import (
	"github.com/gofiber/fiber/v2"

	"sakelien.dev/scenario-backend/internal/pkg/middlewares"
	"sakelien.dev/scenario-backend/internal/service"
)

// V1 carries the public API surface.
type V1 struct {
	fiber.Router
}

// Admin carries moderation endpoints; every route in the group sits behind
// the admin gate.
type Admin struct {
	fiber.Router
}

// Meta carries operational endpoints (health, build info).
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, adminService *service.Admin) (*V1, *Admin, *Meta) {
	v1 := app.Group("/api/v1")
	admin := app.Group("/api/_/admin", middlewares.RequireAdmin(adminService))
	meta := app.Group("/api/_/meta")

	return &V1{Router: v1}, &Admin{Router: admin}, &Meta{Router: meta}
}
