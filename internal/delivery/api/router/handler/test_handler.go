package handler

import (
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/middleware"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler mints and inspects tokens for local development
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// IssueTokenRequest names the subject and roles of a development token
type IssueTokenRequest struct {
	UserID string   `json:"userId" validate:"required"`
	Roles  []string `json:"roles"`
}

// IssueToken signs an access token with the configured secret
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.tokenSvc.GenerateToken(req.UserID, req.Roles)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"accessToken": token,
		"tokenType":   "Bearer",
		"expiresIn":   int(h.tokenSvc.GetAccessTokenDuration().Seconds()),
	})
}

// WhoAmI echoes the claims of the presented token
func (h *TestHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": userID,
		"roles":  roles,
	})
}
