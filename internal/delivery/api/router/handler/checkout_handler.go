package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the checkout wizard of the session
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

type checkoutStep func(ctx context.Context, owner string) (*entity.CheckoutSession, error)

// serve resolves the owner, runs step and renders the resulting session.
func (h *CheckoutHandler) serve(c echo.Context, step checkoutStep) error {
	owner, ok := sessionOwner(c)
	if !ok {
		return missingSession(c)
	}

	session, err := step(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// GetSession returns the wizard state
func (h *CheckoutHandler) GetSession(c echo.Context) error {
	return h.serve(c, func(ctx context.Context, owner string) (*entity.CheckoutSession, error) {
		return h.checkoutUC.GetSession(ctx, owner)
	})
}

// Begin moves from the cart to the details form
func (h *CheckoutHandler) Begin(c echo.Context) error {
	return h.serve(c, func(ctx context.Context, owner string) (*entity.CheckoutSession, error) {
		return h.checkoutUC.Begin(ctx, owner)
	})
}

// SubmitDetails validates the customer form
func (h *CheckoutHandler) SubmitDetails(c echo.Context) error {
	return h.serve(c, func(ctx context.Context, owner string) (*entity.CheckoutSession, error) {
		var req usecase.CheckoutDetailsInput
		if err := bindAndValidate(c, &req); err != nil {
			return nil, err
		}

		return h.checkoutUC.SubmitDetails(ctx, owner, &req)
	})
}

// Back returns to the previous step
func (h *CheckoutHandler) Back(c echo.Context) error {
	return h.serve(c, func(ctx context.Context, owner string) (*entity.CheckoutSession, error) {
		return h.checkoutUC.Back(ctx, owner)
	})
}

// SubmitPayment charges the cart. The card fields are accepted but never validated.
func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	return h.serve(c, func(ctx context.Context, owner string) (*entity.CheckoutSession, error) {
		var req usecase.PaymentInput
		if err := bindAndValidate(c, &req); err != nil {
			return nil, err
		}

		return h.checkoutUC.SubmitPayment(ctx, owner, &req)
	})
}

// Cancel abandons the wizard
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	return h.serve(c, func(ctx context.Context, owner string) (*entity.CheckoutSession, error) {
		return h.checkoutUC.Cancel(ctx, owner)
	})
}
