package handler

import (
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the session-scoped shopping cart
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// SetOpenRequest toggles the cart drawer
type SetOpenRequest struct {
	Open *bool `json:"open" validate:"required"`
}

// GetCart returns the lines and totals of the session cart
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	view, err := h.cartUC.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem adds a line or increases the quantity of an existing one
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	var req usecase.CartItemInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), owner, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateItem patches one line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	var req usecase.CartItemPatch
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.UpdateItem(c.Request().Context(), owner, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem deletes one line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	ctx := c.Request().Context()
	if err := h.cartUC.ClearCart(ctx, owner); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.GetCart(ctx, owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SetOpen opens or closes the cart drawer
func (h *CartHandler) SetOpen(c echo.Context) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	var req SetOpenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.SetOpen(c.Request().Context(), owner, *req.Open)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
