package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/server/httpserver"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

func newUnknownTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	group := &svr.Admin{Router: app.Group("/api/_/admin")}
	RegisterUnknownController(group, UnknownController{
		UnknownService: service.NewUnknown(nil, nil, nil),
	})
	return app
}

func TestGetOpenUnknownsRequiresTypeQuery(t *testing.T) {
	app := newUnknownTestApp(t)

	for _, path := range []string{
		"/api/_/admin/unknown",
		"/api/_/admin/unknown?type=",
		"/api/_/admin/unknown?type=items",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "path %s", path)
	}
}

func TestResolveUnknownValidatesID(t *testing.T) {
	app := newUnknownTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/_/admin/unknown/stages/zero/resolve", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
