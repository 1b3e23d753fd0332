package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
	"golang.org/x/image/draw"
	"gopkg.in/guregu/null.v3"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/model"
	"sakelien.dev/scenario-backend/internal/model/cache"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
	"sakelien.dev/scenario-backend/internal/repo"
)

const avatarSizePx = 256

type Account struct {
	AccountRepo    *repo.Account
	StorageService *Storage
}

func NewAccount(accountRepo *repo.Account, storageService *Storage) *Account {
	return &Account{
		AccountRepo:    accountRepo,
		StorageService: storageService,
	}
}

// Cache: account#userId:{userId}, 1 hr
func (s *Account) GetOrCreateAccount(ctx context.Context, userID string) (*model.Account, error) {
	var account model.Account
	_, err := cache.AccountByUserID.MutexGetSet(userID, &account, func() (model.Account, error) {
		found, err := s.AccountRepo.GetAccountByUserID(ctx, userID)
		if err == nil {
			return *found, nil
		} else if !errors.Is(err, hberr.ErrNotFound) {
			return model.Account{}, err
		}
		created, err := s.AccountRepo.CreateAccount(ctx, userID)
		if err != nil {
			return model.Account{}, err
		}
		return *created, nil
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAvatar validates and normalizes an uploaded image, stores it, and
// points the caller's profile at the result. Uploads are center-cropped,
// scaled to a 256px square and re-encoded as PNG, so stored avatars never
// carry the original file's metadata.
func (s *Account) UpdateAvatar(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", hberr.ErrInvalidReq.Msg("avatar file is required")
	}
	if len(data) > constant.AvatarMaxSizeBytes {
		return "", hberr.ErrInvalidReq.Msg("avatar must be at most %d bytes", constant.AvatarMaxSizeBytes)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", hberr.ErrInvalidReq.Msg("avatar must be an image")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", hberr.ErrInvalidReq.Msg("avatar is not a decodable image")
	}

	encoded, err := normalizeAvatar(img)
	if err != nil {
		return "", err
	}

	if _, err := s.GetOrCreateAccount(ctx, userID); err != nil {
		return "", err
	}

	var avatarURL string
	if s.StorageService.Enabled() {
		key := fmt.Sprintf("avatars/%s/%016x.png", userID, xxh3.Hash(encoded))
		avatarURL, err = s.StorageService.Upload(ctx, key, "image/png", encoded)
		if err != nil {
			return "", err
		}
	} else {
		avatarURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(encoded)
	}

	if err := s.AccountRepo.UpdateAvatarURL(ctx, userID, null.StringFrom(avatarURL)); err != nil {
		return "", err
	}
	cache.AccountByUserID.Delete(userID)

	return avatarURL, nil
}

func normalizeAvatar(img image.Image) ([]byte, error) {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	if side == 0 {
		return nil, hberr.ErrInvalidReq.Msg("avatar image is empty")
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2

	cropped := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(cropped, cropped.Bounds(), img, image.Point{X: x0, Y: y0}, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, avatarSizePx, avatarSizePx))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, errors.Wrap(err, "failed to encode avatar")
	}
	return buf.Bytes(), nil
}
