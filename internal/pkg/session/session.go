package session

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/pkg/identity"
)

// Inject propagates a (possibly refreshed) session onto the response cookies
// and into request locals, so downstream handlers observe the fresh tokens
// within the same request.
func Inject(ctx *fiber.Ctx, s *identity.Session) {
	setCookie(ctx, constant.AccessTokenCookieKey, s.AccessToken)
	setCookie(ctx, constant.RefreshTokenCookieKey, s.RefreshToken)

	ctx.Locals(constant.ContextKeyAccessToken, s.AccessToken)
	if s.UserID != "" {
		ctx.Locals(constant.ContextKeyUserID, s.UserID)
	}
}

func setCookie(ctx *fiber.Ctx, name, value string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   constant.AuthMaxCookieAgeSec,
		Path:     "/",
		Expires:  time.Now().Add(time.Second * constant.AuthMaxCookieAgeSec),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   true,
	})
}

// AccessToken extracts the caller's access token, preferring a token refreshed
// earlier in this request over the inbound cookie, with an Authorization
// header fallback for non-browser clients.
func AccessToken(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals(constant.ContextKeyAccessToken).(string); ok && v != "" {
		return v
	}

	if v := ctx.Cookies(constant.AccessTokenCookieKey); v != "" {
		return v
	}

	authorization := ctx.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	}

	return ""
}

func RefreshToken(ctx *fiber.Ctx) string {
	return ctx.Cookies(constant.RefreshTokenCookieKey)
}

// UserID returns the identity subject resolved earlier in the request, if any.
func UserID(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals(constant.ContextKeyUserID).(string); ok {
		return v
	}
	return ""
}
