package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/service"
)

type Site struct {
	fx.In

	SitemapService *service.Sitemap
}

// RegisterSite serves the crawler endpoints from the site root, where
// crawlers expect them.
func RegisterSite(app *fiber.App, c Site) {
	app.Get("/sitemap.xml", cache.New(cache.Config{
		Expiration: time.Minute * 10,
	}), c.Sitemap)
	app.Get("/robots.txt", c.Robots)
}

func (c *Site) Sitemap(ctx *fiber.Ctx) error {
	body, err := c.SitemapService.Generate(ctx.UserContext())
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return ctx.Send(body)
}

func (c *Site) Robots(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return ctx.SendString(c.SitemapService.Robots())
}
