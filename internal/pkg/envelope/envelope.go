// Package envelope shapes JSON success responses. Error responses take the
// matching failure shape in the server's error handler.
package envelope

import "github.com/gofiber/fiber/v2"

func OK(ctx *fiber.Ctx, data any) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func Created(ctx *fiber.Ctx, data any) error {
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
