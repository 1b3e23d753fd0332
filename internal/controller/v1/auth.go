package v1

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/app/appconfig"
	"sakelien.dev/scenario-backend/internal/pkg/identity"
	"sakelien.dev/scenario-backend/internal/pkg/session"
	"sakelien.dev/scenario-backend/internal/server/svr"
)

type AuthController struct {
	fx.In

	Config         *appconfig.Config
	IdentityClient *identity.Client
}

func RegisterAuthController(v1 *svr.V1, c AuthController) {
	v1.Get("/auth/callback", c.Callback)
}

// Callback finishes the identity provider's authorization-code flow: the code
// is exchanged for a session, session cookies are set, and the browser is
// sent back to the frontend. Exchange failures redirect to the login page
// instead of surfacing an error body, since the caller is a browser.
func (c *AuthController) Callback(ctx *fiber.Ctx) error {
	next := ctx.Query("next", "/")
	if !strings.HasPrefix(next, "/") {
		next = "/"
	}

	code := ctx.Query("code")
	if code == "" {
		return ctx.Redirect(c.Config.SiteURL+next, fiber.StatusFound)
	}

	sess, err := c.IdentityClient.ExchangeCode(ctx.UserContext(), code)
	if err != nil {
		return ctx.Redirect(c.Config.SiteURL+"/login?error="+url.QueryEscape("code exchange failed"), fiber.StatusFound)
	}

	session.Inject(ctx, sess)
	return ctx.Redirect(c.Config.SiteURL+next, fiber.StatusFound)
}
