package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/middleware"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CopytradingHandlerParams holds dependencies for CopytradingHandler, injected by Fx.
type CopytradingHandlerParams struct {
	fx.In

	CopytradingUC usecase.CopytradingUsecase
	Logger        *slog.Logger
}

// CopytradingHandler serves copytrading self-service and administration
type CopytradingHandler struct {
	copytradingUC usecase.CopytradingUsecase
	logger        *slog.Logger
}

// NewCopytradingHandler is the constructor for CopytradingHandler
func NewCopytradingHandler(params CopytradingHandlerParams) *CopytradingHandler {
	return &CopytradingHandler{
		copytradingUC: params.CopytradingUC,
		logger:        params.Logger,
	}
}

// AccountStatusRequest sets the status of an account
type AccountStatusRequest struct {
	Status entity.AccountStatus `json:"status" validate:"required,oneof=pending active error disabled"`
}

// RegisterAccount links a broker account to the caller
func (h *CopytradingHandler) RegisterAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.RegisterAccountInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	req.UserID = userID

	account, err := h.copytradingUC.RegisterAccount(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account)
}

// GetMyAccount returns the caller's account
func (h *CopytradingHandler) GetMyAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	account, err := h.copytradingUC.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// ListAccounts returns every account
func (h *CopytradingHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.copytradingUC.ListAccounts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accounts)
}

// UpdateAccountStatus sets an account's status
func (h *CopytradingHandler) UpdateAccountStatus(c echo.Context) error {
	var req AccountStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.copytradingUC.UpdateAccountStatus(c.Request().Context(), c.Param("userId"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// UpdateRiskSettings replaces an account's risk settings
func (h *CopytradingHandler) UpdateRiskSettings(c echo.Context) error {
	var req entity.RiskSettings
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.copytradingUC.UpdateRiskSettings(c.Request().Context(), c.Param("userId"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// ListOperations returns the trade feed, optionally filtered by ?status=
func (h *CopytradingHandler) ListOperations(c echo.Context) error {
	operations, err := h.copytradingUC.ListOperations(c.Request().Context(), entity.TradeStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, operations)
}

// Sync runs a sync pass now
func (h *CopytradingHandler) Sync(c echo.Context) error {
	report, err := h.copytradingUC.SyncTrades(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
