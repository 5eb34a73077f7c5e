// Package handler contains the echo handlers of the API server.
package handler

import (
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func missingSession(c echo.Context) error {
	return response.Error(c, http.StatusBadRequest, "MISSING_SESSION", "X-Session-Id is required", nil)
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// sessionOwner returns the browser session that owns the cart and checkout of the request.
func sessionOwner(c echo.Context) (string, bool) {
	return deliverycontext.GetSessionID(c)
}
