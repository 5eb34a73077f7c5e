package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SiteConfigHandlerParams holds dependencies for SiteConfigHandler, injected by Fx.
type SiteConfigHandlerParams struct {
	fx.In

	SiteConfigUC  usecase.SiteConfigUsecase
	IntegrationUC usecase.IntegrationUsecase
	Logger        *slog.Logger
}

// SiteConfigHandler serves the site configuration, env overrides and integration status
type SiteConfigHandler struct {
	siteConfigUC  usecase.SiteConfigUsecase
	integrationUC usecase.IntegrationUsecase
	logger        *slog.Logger
}

// NewSiteConfigHandler is the constructor for SiteConfigHandler
func NewSiteConfigHandler(params SiteConfigHandlerParams) *SiteConfigHandler {
	return &SiteConfigHandler{
		siteConfigUC:  params.SiteConfigUC,
		integrationUC: params.IntegrationUC,
		logger:        params.Logger,
	}
}

// EnvOverrideRequest sets the value of an allow-listed variable
type EnvOverrideRequest struct {
	Value string `json:"value"`
}

// GetConfig returns the current site configuration
func (h *SiteConfigHandler) GetConfig(c echo.Context) error {
	cfg, err := h.siteConfigUC.GetConfig(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// UpdateConfig merges a partial document into the configuration
func (h *SiteConfigHandler) UpdateConfig(c echo.Context) error {
	partial := map[string]any{}
	if err := c.Bind(&partial); err != nil {
		return response.BindingError(c, "Malformed configuration document")
	}

	cfg, err := h.siteConfigUC.UpdateConfig(c.Request().Context(), partial)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// ResetConfig restores the defaults
func (h *SiteConfigHandler) ResetConfig(c echo.Context) error {
	cfg, err := h.siteConfigUC.ResetConfig(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg)
}

// ListEnvOverrides returns the stored overrides
func (h *SiteConfigHandler) ListEnvOverrides(c echo.Context) error {
	overrides, err := h.siteConfigUC.ListEnvOverrides(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overrides)
}

// SetEnvOverride stores an override
func (h *SiteConfigHandler) SetEnvOverride(c echo.Context) error {
	var req EnvOverrideRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	name := c.Param("name")
	if err := h.siteConfigUC.SetEnvOverride(c.Request().Context(), name, req.Value); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.EnvOverride{Name: name, Value: req.Value})
}

// DeleteEnvOverride removes an override
func (h *SiteConfigHandler) DeleteEnvOverride(c echo.Context) error {
	if err := h.siteConfigUC.DeleteEnvOverride(c.Request().Context(), c.Param("name")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Integrations probes the companion services
func (h *SiteConfigHandler) Integrations(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.integrationUC.CheckIntegrations(c.Request().Context()))
}
