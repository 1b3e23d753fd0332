package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/model/types"
	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

type AliasController struct {
	fx.In

	AliasService *service.Alias
}

func RegisterAliasController(admin *svr.Admin, c AliasController) {
	admin.Get("/aliases/stages", c.GetStageAliases)
	admin.Post("/aliases/stages", c.CreateStageAlias)
	admin.Delete("/aliases/stages/:id", c.DeleteStageAlias)

	admin.Get("/aliases/weapons", c.GetWeaponAliases)
	admin.Post("/aliases/weapons", c.CreateWeaponAlias)
	admin.Delete("/aliases/weapons/:id", c.DeleteWeaponAlias)
}

func (c *AliasController) GetStageAliases(ctx *fiber.Ctx) error {
	aliases, err := c.AliasService.GetStageAliases(ctx.UserContext())
	if err != nil {
		return err
	}
	return envelope.OK(ctx, aliases)
}

func (c *AliasController) CreateStageAlias(ctx *fiber.Ctx) error {
	var req types.CreateStageAliasRequest
	if err := ctx.BodyParser(&req); err != nil {
		return hberr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	if req.StageID == 0 || req.Alias == "" {
		return hberr.ErrInvalidReq.Msg("stage_id and alias are required")
	}

	alias, err := c.AliasService.CreateStageAlias(ctx.UserContext(), req.StageID, req.Alias)
	if err != nil {
		return err
	}
	return envelope.Created(ctx, alias)
}

func (c *AliasController) DeleteStageAlias(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return hberr.ErrInvalidReq.Msg("invalid or missing id")
	}

	if err := c.AliasService.DeleteStageAlias(ctx.UserContext(), id); err != nil {
		return err
	}
	return envelope.OK(ctx, fiber.Map{"deleted": id})
}

func (c *AliasController) GetWeaponAliases(ctx *fiber.Ctx) error {
	aliases, err := c.AliasService.GetWeaponAliases(ctx.UserContext())
	if err != nil {
		return err
	}
	return envelope.OK(ctx, aliases)
}

func (c *AliasController) CreateWeaponAlias(ctx *fiber.Ctx) error {
	var req types.CreateWeaponAliasRequest
	if err := ctx.BodyParser(&req); err != nil {
		return hberr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	if req.WeaponID == 0 || req.Alias == "" {
		return hberr.ErrInvalidReq.Msg("weapon_id and alias are required")
	}

	alias, err := c.AliasService.CreateWeaponAlias(ctx.UserContext(), req.WeaponID, req.Alias)
	if err != nil {
		return err
	}
	return envelope.Created(ctx, alias)
}

func (c *AliasController) DeleteWeaponAlias(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return hberr.ErrInvalidReq.Msg("invalid or missing id")
	}

	if err := c.AliasService.DeleteWeaponAlias(ctx.UserContext(), id); err != nil {
		return err
	}
	return envelope.OK(ctx, fiber.Map{"deleted": id})
}
