// Package middleware holds the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.Any("error", err), slog.String("path", c.Path()))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.Details(err))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Unknown errors are logged in full but never exposed to the client
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
