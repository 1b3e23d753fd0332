package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	modelcache "sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/model/types"
	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/util/rekuest"
)

type CacheController struct {
	fx.In
}

func RegisterCacheController(admin *svr.Admin, c CacheController) {
	admin.Post("/purge", c.PurgeCache)
}

func (c *CacheController) PurgeCache(ctx *fiber.Ctx) error {
	var req types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if err := modelcache.Delete(req.Name, req.Key); err != nil {
		return err
	}
	return envelope.OK(ctx, fiber.Map{"purged": req.Name})
}
