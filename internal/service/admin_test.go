package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
)

const testJWTSecret = "test-secret"

type fakeMembership struct {
	admins map[string]bool
}

func (f *fakeMembership) GetAdminByUserID(_ context.Context, userID string) (*model.Admin, error) {
	if f.admins[userID] {
		return &model.Admin{UserID: userID}, nil
	}
	return nil, hberr.ErrNotFound
}

func newTestAdmin(adminIDs ...string) *Admin {
	admins := map[string]bool{}
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Admin{
		jwtSecret: testJWTSecret,
		admins:    &fakeMembership{admins: admins},
	}
}

func signToken(t *testing.T, secret, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func checkIsAdmin(t *testing.T, svc *Admin, mutate func(req *http.Request)) bool {
	t.Helper()

	app := fiber.New()
	var result bool
	app.Get("/", func(c *fiber.Ctx) error {
		result = svc.IsAdmin(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	_, err := app.Test(req)
	require.NoError(t, err)

	return result
}

func TestAdminGateDeniesAnonymous(t *testing.T) {
	svc := newTestAdmin("admin-1")

	assert.False(t, checkIsAdmin(t, svc, nil))
}

func TestAdminGateDeniesForgedToken(t *testing.T) {
	svc := newTestAdmin("admin-1")
	forged := signToken(t, "some-other-secret", "admin-1")

	assert.False(t, checkIsAdmin(t, svc, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constant.AccessTokenCookieKey, Value: forged})
	}))
}

func TestAdminGateDeniesNonMember(t *testing.T) {
	svc := newTestAdmin("admin-1")
	token := signToken(t, testJWTSecret, "mortal-user")

	assert.False(t, checkIsAdmin(t, svc, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constant.AccessTokenCookieKey, Value: token})
	}))
}

func TestAdminGateAcceptsMember(t *testing.T) {
	svc := newTestAdmin("admin-1")
	token := signToken(t, testJWTSecret, "admin-1")

	assert.True(t, checkIsAdmin(t, svc, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constant.AccessTokenCookieKey, Value: token})
	}))
}

func TestAdminGateAcceptsBearerHeader(t *testing.T) {
	svc := newTestAdmin("admin-1")
	token := signToken(t, testJWTSecret, "admin-1")

	assert.True(t, checkIsAdmin(t, svc, func(req *http.Request) {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}))
}

func TestAdminGateFailsClosedWithoutVerifier(t *testing.T) {
	// no JWT secret and no identity client leaves no way to verify a token
	svc := &Admin{
		admins: &fakeMembership{admins: map[string]bool{"admin-1": true}},
	}
	token := signToken(t, testJWTSecret, "admin-1")

	assert.False(t, checkIsAdmin(t, svc, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: constant.AccessTokenCookieKey, Value: token})
	}))
}
