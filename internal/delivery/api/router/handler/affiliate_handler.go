package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AffiliateHandlerParams holds dependencies for AffiliateHandler, injected by Fx.
type AffiliateHandlerParams struct {
	fx.In

	AffiliateUC usecase.AffiliateUsecase
	Logger      *slog.Logger
}

// AffiliateHandler serves members and the affiliate programme
type AffiliateHandler struct {
	affiliateUC usecase.AffiliateUsecase
	logger      *slog.Logger
}

// NewAffiliateHandler is the constructor for AffiliateHandler
func NewAffiliateHandler(params AffiliateHandlerParams) *AffiliateHandler {
	return &AffiliateHandler{
		affiliateUC: params.AffiliateUC,
		logger:      params.Logger,
	}
}

// UpdateRoleRequest changes a member's tier
type UpdateRoleRequest struct {
	Role entity.Role `json:"role" validate:"required"`
}

// AssignCodeRequest enrols a member; an empty code is generated
type AssignCodeRequest struct {
	Code string `json:"code"`
}

// Eligibility reports whether a role may hold an affiliate code
func (h *AffiliateHandler) Eligibility(c echo.Context) error {
	role := c.QueryParam("role")

	return response.Success(c, http.StatusOK, map[string]any{
		"role":     role,
		"eligible": entity.CanBeAffiliate(role),
	})
}

// ListMembers returns every registered member
func (h *AffiliateHandler) ListMembers(c echo.Context) error {
	members, err := h.affiliateUC.ListMembers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members)
}

// RegisterMember adds a member
func (h *AffiliateHandler) RegisterMember(c echo.Context) error {
	var req usecase.MemberInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.affiliateUC.RegisterMember(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member)
}

// UpdateMemberRole changes a member's tier, revoking the code of demoted affiliates
func (h *AffiliateHandler) UpdateMemberRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.affiliateUC.UpdateMemberRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member)
}

// ListAffiliates returns every affiliate with its ledger totals
func (h *AffiliateHandler) ListAffiliates(c echo.Context) error {
	affiliates, err := h.affiliateUC.ListAffiliates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, affiliates)
}

// AssignCode sets or generates the affiliate code of a member
func (h *AffiliateHandler) AssignCode(c echo.Context) error {
	var req AssignCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	affiliate, err := h.affiliateUC.AssignAffiliateCode(c.Request().Context(), c.Param("id"), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, affiliate)
}

// RevokeCode removes a member from the programme
func (h *AffiliateHandler) RevokeCode(c echo.Context) error {
	if err := h.affiliateUC.RevokeAffiliateCode(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// QRCode renders the referral link of an affiliate as a PNG
func (h *AffiliateHandler) QRCode(c echo.Context) error {
	png, err := h.affiliateUC.AffiliateQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
