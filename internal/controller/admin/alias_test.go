package admin

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
	"sakelien.dev/scenario-backend/internal/pkg/middlewares"
	"sakelien.dev/scenario-backend/internal/server/httpserver"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

func newAliasTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	group := &svr.Admin{Router: app.Group("/api/_/admin")}
	RegisterAliasController(group, AliasController{
		AliasService: service.NewAlias(nil, nil),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestCreateStageAliasRequiresBothFields(t *testing.T) {
	app := newAliasTestApp(t)

	for _, body := range []string{
		`{}`,
		`{"stage_id": 1}`,
		`{"alias": "SG"}`,
		`{"stage_id": 0, "alias": ""}`,
	} {
		status, parsed := postJSON(t, app, "/api/_/admin/aliases/stages", body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body %s", body)
		assert.Equal(t, false, parsed["success"])
		assert.Equal(t, "stage_id and alias are required", parsed["error"])
	}
}

func TestCreateWeaponAliasRequiresBothFields(t *testing.T) {
	app := newAliasTestApp(t)

	status, parsed := postJSON(t, app, "/api/_/admin/aliases/weapons", `{"weapon_id": 0, "alias": ""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "weapon_id and alias are required", parsed["error"])
}

func TestDeleteStageAliasValidatesID(t *testing.T) {
	app := newAliasTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/_/admin/aliases/stages/nonsense", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminGroupRejectsAnonymous(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	gate := service.NewAdmin(&appconfig.Config{}, nil, nil)
	group := &svr.Admin{Router: app.Group("/api/_/admin", middlewares.RequireAdmin(gate))}
	RegisterAliasController(group, AliasController{
		AliasService: service.NewAlias(nil, nil),
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/_/admin/aliases/stages", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "admin required", parsed["error"])
	assert.Equal(t, "FORBIDDEN", parsed["code"])
}
