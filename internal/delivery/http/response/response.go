// Package response contains the wire envelopes of the public API.
package response

import (
	"github.com/labstack/echo/v4"

	domainerrors "cityhub/internal/domain/errors"
)

// DataEnvelope wraps a single resource.
type DataEnvelope struct {
	Data any `json:"data"`
}

// AckEnvelope is the delete response shape.
type AckEnvelope struct {
	Acknowledged bool `json:"acknowledged"`
	Data         any  `json:"data"`
}

// ErrorEnvelope is the unified error body: {"error": "<CODE>: <mensaje>"}.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// Data writes a single resource as {"data": ...}.
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, DataEnvelope{Data: data})
}

// List writes a collection bare, without an envelope.
func List(c echo.Context, statusCode int, items any) error {
	return c.JSON(statusCode, items)
}

// Acknowledged writes the delete response shape.
func Acknowledged(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, AckEnvelope{Acknowledged: true, Data: data})
}

// Error writes an AppError as the unified error body with its status code.
// The body carries the public code and message only, never the cause.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), ErrorEnvelope{Error: appErr.ErrorCode() + ": " + appErr.Message()})
}
