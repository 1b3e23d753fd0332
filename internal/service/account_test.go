package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakelien.dev/scenario-backend/internal/constant"
	"sakelien.dev/scenario-backend/internal/pkg/hberr"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func assertInvalidReq(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*hberr.HubError)
	require.True(t, ok)
	assert.Equal(t, hberr.CodeInvalidRequest, he.ErrorCode)
}

func TestUpdateAvatarRejectsEmptyUpload(t *testing.T) {
	svc := &Account{}

	_, err := svc.UpdateAvatar(context.Background(), "user-1", nil, "image/png")
	assertInvalidReq(t, err)
}

func TestUpdateAvatarRejectsOversizedUpload(t *testing.T) {
	svc := &Account{}
	oversized := make([]byte, constant.AvatarMaxSizeBytes+1)

	_, err := svc.UpdateAvatar(context.Background(), "user-1", oversized, "image/png")
	assertInvalidReq(t, err)
}

func TestUpdateAvatarRejectsNonImageContentType(t *testing.T) {
	svc := &Account{}

	_, err := svc.UpdateAvatar(context.Background(), "user-1", []byte("plain text"), "text/plain")
	assertInvalidReq(t, err)
}

func TestUpdateAvatarRejectsUndecodableImage(t *testing.T) {
	svc := &Account{}

	_, err := svc.UpdateAvatar(context.Background(), "user-1", []byte(strings.Repeat("x", 64)), "image/png")
	assertInvalidReq(t, err)
}

func TestNormalizeAvatarCropsAndResizes(t *testing.T) {
	encoded, err := normalizeAvatar(decode(t, encodePNG(t, 512, 256)))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, avatarSizePx, img.Bounds().Dx())
	assert.Equal(t, avatarSizePx, img.Bounds().Dy())
}

func TestNormalizeAvatarKeepsSmallImagesSquare(t *testing.T) {
	encoded, err := normalizeAvatar(decode(t, encodePNG(t, 32, 48)))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, avatarSizePx, img.Bounds().Dx())
	assert.Equal(t, avatarSizePx, img.Bounds().Dy())
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}
