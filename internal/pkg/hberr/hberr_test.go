package hberr

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMsgReturnsCopy(t *testing.T) {
	customized := ErrInvalidReq.Msg("unrecognized stage: %s", "Spawning Grounds")

	assert.Equal(t, "unrecognized stage: Spawning Grounds", customized.Message)
	assert.Equal(t, CodeInvalidRequest, customized.ErrorCode)
	assert.Equal(t, fiber.StatusBadRequest, customized.StatusCode)

	assert.NotSame(t, ErrInvalidReq, customized)
	assert.Equal(t, "invalid request: some or all request parameters are invalid", ErrInvalidReq.Message)
}

func TestWithExtrasReturnsCopy(t *testing.T) {
	customized := ErrInvalidReq.WithExtras(Extras{"field": "alias"})

	assert.NotNil(t, customized.Extras)
	assert.Nil(t, ErrInvalidReq.Extras)
}

func TestNewInvalidViolationsLeavesSentinelUntouched(t *testing.T) {
	customized := NewInvalidViolations([]string{"alias is required"})

	assert.Equal(t, CodeInvalidRequest, customized.ErrorCode)
	assert.NotNil(t, customized.Extras)
	assert.Nil(t, ErrInvalidReq.Extras)
}

func TestErrorStringCarriesCodeAndMessage(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: resource not found with given parameters", ErrNotFound.Error())
}
