package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"go.uber.org/fx"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/model/types"
	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
	"sakelien.dev/scenario-backend/internal/util/rekuest"
)

type ScenarioController struct {
	fx.In

	ScenarioService *service.Scenario
	AdminService    *service.Admin
}

func RegisterScenarioController(v1 *svr.V1, c ScenarioController) {
	v1.Get("/scenarios/:code", c.GetScenarioByCode)
	v1.Post("/scenarios", c.CreateScenario)
}

func (c *ScenarioController) GetScenarioByCode(ctx *fiber.Ctx) error {
	code := strings.TrimSpace(ctx.Params("code"))
	if code == "" {
		return hberr.ErrInvalidReq.Msg("invalid or missing code")
	}

	scenario, err := c.ScenarioService.GetScenarioByCode(ctx.UserContext(), code)
	if err != nil {
		return err
	}

	resp, err := c.withTags(scenario)
	if err != nil {
		return err
	}
	return envelope.OK(ctx, resp)
}

func (c *ScenarioController) CreateScenario(ctx *fiber.Ctx) error {
	var req types.CreateScenarioRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	var authorID null.String
	if userID := c.AdminService.UserID(ctx); userID != "" {
		authorID = null.StringFrom(userID)
	}

	scenario, err := c.ScenarioService.CreateScenario(ctx.UserContext(), &req, authorID)
	if err != nil {
		return err
	}

	resp, err := c.withTags(scenario)
	if err != nil {
		return err
	}
	return envelope.Created(ctx, resp)
}

func (c *ScenarioController) withTags(scenario *model.Scenario) (*types.ScenarioWithTags, error) {
	var resp types.ScenarioWithTags
	if err := copier.Copy(&resp, scenario); err != nil {
		return nil, err
	}
	resp.Tags = c.ScenarioService.GetScenarioTags(scenario)
	return &resp, nil
}
