package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/pkg/identity"
)

func capture(t *testing.T, handler fiber.Handler, mutate func(req *http.Request)) *http.Response {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAccessTokenPrefersLocals(t *testing.T) {
	var got string
	capture(t, func(c *fiber.Ctx) error {
		Inject(c, &identity.Session{AccessToken: "fresh", RefreshToken: "r", UserID: "u-1"})
		got = AccessToken(c)
		return c.SendString("ok")
	}, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constant.AccessTokenCookieKey, Value: "stale"})
	})

	assert.Equal(t, "fresh", got)
}

func TestAccessTokenFallsBackToCookieThenHeader(t *testing.T) {
	var got string
	read := func(c *fiber.Ctx) error {
		got = AccessToken(c)
		return c.SendString("ok")
	}

	capture(t, read, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constant.AccessTokenCookieKey, Value: "from-cookie"})
		req.Header.Set(fiber.HeaderAuthorization, "Bearer from-header")
	})
	assert.Equal(t, "from-cookie", got)

	capture(t, read, func(req *http.Request) {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer from-header")
	})
	assert.Equal(t, "from-header", got)

	capture(t, read, nil)
	assert.Equal(t, "", got)
}

func TestInjectSetsCookiesAndLocals(t *testing.T) {
	var userID string
	resp := capture(t, func(c *fiber.Ctx) error {
		Inject(c, &identity.Session{AccessToken: "a", RefreshToken: "r", UserID: "u-1"})
		userID = UserID(c)
		return c.SendString("ok")
	}, nil)

	assert.Equal(t, "u-1", userID)

	names := map[string]bool{}
	for _, cookie := range resp.Cookies() {
		names[cookie.Name] = true
	}
	assert.True(t, names[constant.AccessTokenCookieKey])
	assert.True(t, names[constant.RefreshTokenCookieKey])
}
