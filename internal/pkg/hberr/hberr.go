package hberr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeDependencyError = "DEPENDENCY_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrUnauthorized is returned when the request carries no valid session.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "authentication required")

	// ErrForbidden is returned when the authenticated principal lacks privilege.
	ErrForbidden = New(fiber.StatusForbidden, CodeForbidden, "admin required")

	// ErrDependency is returned when a backing store or the identity provider fails.
	ErrDependency = New(fiber.StatusInternalServerError, CodeDependencyError, "upstream dependency failed")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type HubError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *HubError {
	return &HubError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// Msg returns a copy of the error with the message replaced, leaving the
// original sentinel untouched.
func (e HubError) Msg(format string, parts ...interface{}) *HubError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e HubError) WithExtras(extras Extras) *HubError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *HubError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *HubError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
