package httperror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is the HTTP-facing error type returned by handlers. Code is a
// stable machine-readable identifier, Message is human-readable and
// Details carries optional structured context.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(status int, code, message string, details any) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

func BadRequest(code, message string, details any) *Error {
	return New(fiber.StatusBadRequest, code, message, details)
}

func Unauthorized(code, message string, details any) *Error {
	return New(fiber.StatusUnauthorized, code, message, details)
}

func Forbidden(code, message string, details any) *Error {
	return New(fiber.StatusForbidden, code, message, details)
}

func NotFound(code, message string, details any) *Error {
	return New(fiber.StatusNotFound, code, message, details)
}

func InternalServerError(code, message string, details any) *Error {
	return New(fiber.StatusInternalServerError, code, message, details)
}

func BadGateway(code, message string, details any) *Error {
	return New(fiber.StatusBadGateway, code, message, details)
}

func GatewayTimeout(code, message string, details any) *Error {
	return New(fiber.StatusGatewayTimeout, code, message, details)
}
