package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const csvContentType = "text/csv; charset=utf-8"

// CommissionHandlerParams holds dependencies for CommissionHandler, injected by Fx.
type CommissionHandlerParams struct {
	fx.In

	CommissionUC usecase.CommissionUsecase
	Logger       *slog.Logger
}

// CommissionHandler serves the admin commission ledger
type CommissionHandler struct {
	commissionUC usecase.CommissionUsecase
	logger       *slog.Logger
}

// NewCommissionHandler is the constructor for CommissionHandler
func NewCommissionHandler(params CommissionHandlerParams) *CommissionHandler {
	return &CommissionHandler{
		commissionUC: params.CommissionUC,
		logger:       params.Logger,
	}
}

// UpdateStatusRequest moves one commission. ExpectedVersion 0 skips the optimistic check.
type UpdateStatusRequest struct {
	Status          entity.CommissionStatus `json:"status" validate:"required"`
	ExpectedVersion int                     `json:"expectedVersion" validate:"gte=0"`
	Override        bool                    `json:"override"`
}

// BulkStatusRequest moves many commissions at once
type BulkStatusRequest struct {
	IDs      []string                `json:"ids" validate:"required,min=1,dive,required"`
	Status   entity.CommissionStatus `json:"status" validate:"required"`
	Override bool                    `json:"override"`
}

func commissionFilter(c echo.Context) *usecase.CommissionFilter {
	return &usecase.CommissionFilter{
		Search:    c.QueryParam("search"),
		Status:    entity.CommissionStatus(c.QueryParam("status")),
		DateRange: usecase.DateRange(c.QueryParam("dateRange")),
	}
}

// ListCommissions returns the filtered ledger, newest first
func (h *CommissionHandler) ListCommissions(c echo.Context) error {
	commissions, err := h.commissionUC.ListCommissions(c.Request().Context(), commissionFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, commissions)
}

// RecordCommission adds a pending commission manually
func (h *CommissionHandler) RecordCommission(c echo.Context) error {
	var req usecase.CommissionInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	commission, err := h.commissionUC.RecordCommission(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, commission)
}

// GetStats aggregates the filtered ledger
func (h *CommissionHandler) GetStats(c echo.Context) error {
	stats, err := h.commissionUC.GetStats(c.Request().Context(), commissionFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ExportCSV downloads the filtered ledger. The file is built before any byte is sent
// so a failure still renders as a JSON error.
func (h *CommissionHandler) ExportCSV(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.commissionUC.ExportCSV(c.Request().Context(), commissionFilter(c), &buf); err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="commissions.csv"`)

	return c.Blob(http.StatusOK, csvContentType, buf.Bytes())
}

// UpdateStatus moves one commission to a new status
func (h *CommissionHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.commissionUC.UpdateCommissionStatus(c.Request().Context(), c.Param("id"), req.Status, req.ExpectedVersion, req.Override)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// BulkUpdateStatus moves every listed commission and reports the outcome per id
func (h *CommissionHandler) BulkUpdateStatus(c echo.Context) error {
	var req BulkStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.commissionUC.BulkUpdateCommissions(c.Request().Context(), req.IDs, req.Status, req.Override)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
