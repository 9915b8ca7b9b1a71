package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
)

// AppError carries a machine-readable code alongside the HTTP status.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

var domainErrors = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrProfileNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrOrganizationNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrPostNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrCommentNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrResourceNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvitationNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotificationNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrPinLimitReached, fiber.StatusConflict, "PIN_LIMIT_REACHED"},
	{domain.ErrInvitationNotPending, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrDuplicateKey, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInvalidStatus, fiber.StatusBadRequest, "INVALID_STATUS"},
	{domain.ErrInvalidResourceKind, fiber.StatusBadRequest, "INVALID_RESOURCE_TYPE"},
	{domain.ErrParentMismatch, fiber.StatusBadRequest, "BAD_REQUEST"},
	{domain.ErrNoInvitees, fiber.StatusBadRequest, "BAD_REQUEST"},
}

// FromDomain maps a service error onto its HTTP representation. Unknown errors
// become a 500 whose message does not leak internals.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return &AppError{Status: m.status, Code: m.code, Message: m.target.Error()}
		}
	}

	return &AppError{Status: fiber.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "Internal server error"}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		appErr = &AppError{Status: fiberErr.Code, Code: codeForStatus(fiberErr.Code), Message: fiberErr.Message}
	} else {
		appErr = FromDomain(err)
	}

	traceID := uuid.New().String()[:8]

	if appErr.Status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed",
			"trace_id", traceID, "method", c.Method(), "path", c.Path(), "error", err)
	}

	return c.Status(appErr.Status).JSON(domain.Response{
		Success: false,
		Error:   appErr.Message,
		Code:    appErr.Code,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func Unprocessable(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnprocessableEntity, message)
}
