package v1

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

type OGPController struct {
	fx.In

	OGPService *service.OGP
}

func RegisterOGPController(v1 *svr.V1, c OGPController) {
	v1.Get("/og/scenario/:code", c.RenderScenarioCard)
}

func (c *OGPController) RenderScenarioCard(ctx *fiber.Ctx) error {
	code := strings.TrimSpace(ctx.Params("code"))
	if code == "" {
		return hberr.ErrInvalidReq.Msg("invalid or missing code")
	}

	card, err := c.OGPService.Render(ctx.UserContext(), code)
	if err != nil {
		// The consumer is a crawler fetching an image, so errors are
		// plain text rather than the JSON envelope.
		var herr *hberr.HubError
		if errors.As(err, &herr) {
			return ctx.Status(herr.StatusCode).Type("txt").SendString(herr.Message)
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	ctx.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return ctx.Send(card)
}
