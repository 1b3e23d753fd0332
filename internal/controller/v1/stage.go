package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

type StageController struct {
	fx.In

	StageService *service.Stage
}

func RegisterStageController(v1 *svr.V1, c StageController) {
	v1.Get("/stages", c.GetStages)
}

func (c *StageController) GetStages(ctx *fiber.Ctx) error {
	stages, err := c.StageService.GetStages(ctx.UserContext())
	if err != nil {
		return err
	}

	return envelope.OK(ctx, stages)
}
