package v1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/pkg/envelope"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/server/svr"
	"sakelien.dev/scenario-backend/internal/service"
)

type ProfileController struct {
	fx.In

	AdminService   *service.Admin
	AccountService *service.Account
}

func RegisterProfileController(v1 *svr.V1, c ProfileController) {
	v1.Get("/profile", c.GetProfile)
	v1.Post("/profile/avatar", c.UploadAvatar)
}

func (c *ProfileController) GetProfile(ctx *fiber.Ctx) error {
	userID := c.AdminService.UserID(ctx)
	if userID == "" {
		return hberr.ErrUnauthorized
	}

	account, err := c.AccountService.GetOrCreateAccount(ctx.UserContext(), userID)
	if err != nil {
		return err
	}

	return envelope.OK(ctx, account)
}

func (c *ProfileController) UploadAvatar(ctx *fiber.Ctx) error {
	userID := c.AdminService.UserID(ctx)
	if userID == "" {
		return hberr.ErrUnauthorized
	}

	header, err := ctx.FormFile("image")
	if err != nil {
		return hberr.ErrInvalidReq.Msg("image file is required")
	}
	if header.Size > constant.AvatarMaxSizeBytes {
		return hberr.ErrInvalidReq.Msg("avatar must be at most %d bytes", constant.AvatarMaxSizeBytes)
	}

	file, err := header.Open()
	if err != nil {
		return hberr.ErrInvalidReq.Msg("avatar file is unreadable")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return hberr.ErrInvalidReq.Msg("avatar file is unreadable")
	}

	avatarURL, err := c.AccountService.UpdateAvatar(ctx.UserContext(), userID, data, header.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return err
	}

	return envelope.OK(ctx, fiber.Map{
		"avatar_url": avatarURL,
	})
}
