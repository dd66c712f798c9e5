package middleware

import (
	"log/slog"
	"net/http"

	"cityhub/internal/delivery/http/response"
	domainerrors "cityhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// leaves the process as the unified body {"error": "<CODE>: <mensaje>"}.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.Any("error", err),
			)
		}
		_ = response.Error(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			_ = response.Error(c, domainerrors.NewBaseError(httpErr.Code, "NOT_FOUND", "Recurso no encontrado"))
		case http.StatusMethodNotAllowed:
			_ = response.Error(c, domainerrors.NewBaseError(httpErr.Code, "NOT_ALLOWED", "Método no permitido"))
		default:
			_ = response.Error(c, domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", http.StatusText(httpErr.Code)))
		}

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, domainerrors.ErrInternal)
}
