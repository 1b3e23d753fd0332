package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model/types"
	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
	"sakelien.dev/scenario-backend/internal/util/rekuest"
)

type UnknownController struct {
	fx.In

	UnknownService *service.Unknown
}

func RegisterUnknownController(admin *svr.Admin, c UnknownController) {
	admin.Get("/unknown", c.GetOpenUnknowns)
	admin.Post("/unknown/:type/:id/resolve", c.ResolveUnknown)
}

func (c *UnknownController) GetOpenUnknowns(ctx *fiber.Ctx) error {
	switch ctx.Query("type") {
	case constant.UnknownTypeStages:
		entries, err := c.UnknownService.GetOpenStages(ctx.UserContext())
		if err != nil {
			return err
		}
		return envelope.OK(ctx, entries)
	case constant.UnknownTypeWeapons:
		entries, err := c.UnknownService.GetOpenWeapons(ctx.UserContext())
		if err != nil {
			return err
		}
		return envelope.OK(ctx, entries)
	default:
		return hberr.ErrInvalidReq.Msg("type must be one of: %s, %s", constant.UnknownTypeStages, constant.UnknownTypeWeapons)
	}
}

// ResolveUnknown closes an open queue entry by turning its label into an
// alias of the canonical row named in the body.
func (c *UnknownController) ResolveUnknown(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return hberr.ErrInvalidReq.Msg("invalid or missing id")
	}

	var req types.ResolveUnknownRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	switch ctx.Params("type") {
	case constant.UnknownTypeStages:
		alias, err := c.UnknownService.ResolveStageWithAlias(ctx.UserContext(), id, req.TargetID)
		if err != nil {
			return err
		}
		return envelope.Created(ctx, alias)
	case constant.UnknownTypeWeapons:
		alias, err := c.UnknownService.ResolveWeaponWithAlias(ctx.UserContext(), id, req.TargetID)
		if err != nil {
			return err
		}
		return envelope.Created(ctx, alias)
	default:
		return hberr.ErrInvalidReq.Msg("type must be one of: %s, %s", constant.UnknownTypeStages, constant.UnknownTypeWeapons)
	}
}
