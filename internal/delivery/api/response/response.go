// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Field errors or extra context (4xx only)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors; anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), Details(err))
	}

	return errors.WithStack(err)
}

// Details picks the client-facing detail of an AppError: field errors for validation failures,
// the details string otherwise.
func Details(err error) any {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Fields()) > 0 {
		return validationErr.Fields()
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Details()
	}

	return nil
}
