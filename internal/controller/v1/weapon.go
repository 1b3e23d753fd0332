package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

type WeaponController struct {
	fx.In

	WeaponService *service.Weapon
}

func RegisterWeaponController(v1 *svr.V1, c WeaponController) {
	v1.Get("/weapons", c.GetWeapons)
}

func (c *WeaponController) GetWeapons(ctx *fiber.Ctx) error {
	weapons, err := c.WeaponService.GetWeapons(ctx.UserContext())
	if err != nil {
		return err
	}

	return envelope.OK(ctx, weapons)
}
