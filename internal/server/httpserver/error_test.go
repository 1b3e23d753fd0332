package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/pkg/hberr"
)

func performRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandlerKnownError(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return hberr.ErrNotFound
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, hberr.CodeNotFound, body["code"])
	assert.NotEmpty(t, body["error"])
}

func TestErrorHandlerCustomMessage(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return hberr.ErrInvalidReq.Msg("stage_id and alias are required")
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, hberr.CodeInvalidRequest, body["code"])
	assert.Equal(t, "stage_id and alias are required", body["error"])
}

func TestErrorHandlerUnexpectedError(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, hberr.CodeInternalError, body["code"])
}

func TestErrorHandlerFiberError(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UNKNOWN_ERROR", body["code"])
	assert.Equal(t, "short and stout", body["error"])
}

func TestErrorHandlerExtras(t *testing.T) {
	status, body := performRequest(t, func(c *fiber.Ctx) error {
		return hberr.NewInvalidViolations([]string{"stage_name is required"})
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "violations")
	assert.Equal(t, false, body["success"])
}
