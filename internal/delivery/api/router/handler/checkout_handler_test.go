package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	mockUsecase "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/usecase"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutHandler(t *testing.T) (*CheckoutHandler, *mockUsecase.MockCheckoutUsecase) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)

	return NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: slog.Default()}), checkoutUC
}

func TestCheckoutHandler_Begin(t *testing.T) {
	t.Run("moves to details", func(t *testing.T) {
		h, checkoutUC := createTestCheckoutHandler(t)
		e := newTestEcho()

		checkoutUC.EXPECT().Begin(mock.Anything, testSessionID).
			Return(&entity.CheckoutSession{OwnerID: testSessionID, Step: entity.CheckoutStepDetails}, nil)

		c, rec := newSessionContext(e, http.MethodPost, "/api/checkout/begin", "")
		require.NoError(t, h.Begin(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got entity.CheckoutSession
		decodeData(t, rec, &got)
		assert.Equal(t, entity.CheckoutStepDetails, got.Step)
	})

	t.Run("empty cart", func(t *testing.T) {
		h, checkoutUC := createTestCheckoutHandler(t)
		e := newTestEcho()

		checkoutUC.EXPECT().Begin(mock.Anything, testSessionID).Return(nil, domainerrors.ErrEmptyCart)

		c, rec := newSessionContext(e, http.MethodPost, "/api/checkout/begin", "")
		require.NoError(t, h.Begin(c))

		requireErrorCode(t, rec, http.StatusBadRequest, "EMPTY_CART")
	})
}

func TestCheckoutHandler_SubmitDetails_FieldErrors(t *testing.T) {
	t.Run("malformed form is rejected before the use case", func(t *testing.T) {
		h, _ := createTestCheckoutHandler(t)
		e := newTestEcho()

		c, rec := newSessionContext(e, http.MethodPost, "/api/checkout/details", `{"name":"Ana","email":"not-an-email"}`)
		require.NoError(t, h.SubmitDetails(c))

		errInfo := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{"email": "must be a valid email address"}, errInfo.Details)
	})

	t.Run("use case field errors are passed through", func(t *testing.T) {
		h, checkoutUC := createTestCheckoutHandler(t)
		e := newTestEcho()

		checkoutUC.EXPECT().
			SubmitDetails(mock.Anything, testSessionID, &usecase.CheckoutDetailsInput{Name: "Ana", Email: "ana@example.com"}).
			Return(nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"tradingViewUsername": "required for scanner products"}))

		c, rec := newSessionContext(e, http.MethodPost, "/api/checkout/details", `{"name":"Ana","email":"ana@example.com"}`)
		require.NoError(t, h.SubmitDetails(c))

		errInfo := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, map[string]any{"tradingViewUsername": "required for scanner products"}, errInfo.Details)
	})
}

func TestCheckoutHandler_SubmitPayment(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "payment in flight", err: domainerrors.ErrPaymentInProgress, wantStatus: http.StatusConflict, wantCode: "PAYMENT_IN_PROGRESS"},
		{name: "gateway refused", err: domainerrors.ErrPaymentFailed.WithDetails("card declined"), wantStatus: http.StatusPaymentRequired, wantCode: "PAYMENT_FAILED"},
		{name: "wrong step", err: domainerrors.ErrIllegalCheckoutTransition, wantStatus: http.StatusConflict, wantCode: "ILLEGAL_CHECKOUT_TRANSITION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, checkoutUC := createTestCheckoutHandler(t)
			e := newTestEcho()

			checkoutUC.EXPECT().SubmitPayment(mock.Anything, testSessionID, mock.Anything).Return(nil, tt.err)

			c, rec := newSessionContext(e, http.MethodPost, "/api/checkout/payment", "")
			require.NoError(t, h.SubmitPayment(c))

			requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestCheckoutHandler_SubmitPayment_Confirmation(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)
	e := newTestEcho()

	session := &entity.CheckoutSession{
		OwnerID: testSessionID,
		Step:    entity.CheckoutStepConfirmation,
		Order:   &entity.Order{Total: 400, Currency: "EUR", PaymentReference: "SIM-1"},
	}
	checkoutUC.EXPECT().
		SubmitPayment(mock.Anything, testSessionID, &usecase.PaymentInput{CardName: "Ana"}).
		Return(session, nil)

	c, rec := newSessionContext(e, http.MethodPost, "/api/checkout/payment", `{"cardName":"Ana"}`)
	require.NoError(t, h.SubmitPayment(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.CheckoutSession
	decodeData(t, rec, &got)
	require.NotNil(t, got.Order)
	assert.Equal(t, 400.0, got.Order.Total)
	assert.Equal(t, "SIM-1", got.Order.PaymentReference)
}

func TestCheckoutHandler_MissingSession(t *testing.T) {
	h, _ := createTestCheckoutHandler(t)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/api/checkout/cancel", "")
	require.NoError(t, h.Cancel(c))

	requireErrorCode(t, rec, http.StatusBadRequest, "MISSING_SESSION")
}
