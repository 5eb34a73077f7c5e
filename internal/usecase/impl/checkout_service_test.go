package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/payment"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	mockService "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	cart        usecase.CartUsecase
	commissions usecase.CommissionUsecase
	affiliates  usecase.AffiliateUsecase
	siteConfig  usecase.SiteConfigUsecase
	gateway     *mockService.MockPaymentGateway
	publisher   *mockService.MockEventPublisher
}

func createTestCheckoutService(t *testing.T, gateway service.PaymentGateway) checkoutServiceFixtures {
	store := memory.NewKeyValueStore()
	metrics := newLenientMetrics(t)
	cfg := newServiceTestConfig()
	logger := newTestLogger()

	qrCode := mockService.NewMockQRCodeService(t)
	qrCode.EXPECT().ReferralURL(mock.Anything).Return("https://morethanmoney.pt/?ref=X").Maybe()

	cart := NewCartService(CartServiceParams{CartRepo: document.NewCartRepository(store), Metrics: metrics, Logger: logger})
	commissions := NewCommissionService(CommissionServiceParams{
		CommissionRepo: document.NewCommissionRepository(store),
		Metrics:        metrics,
		Config:         cfg,
		Logger:         logger,
	})
	affiliates := NewAffiliateService(AffiliateServiceParams{
		MemberRepo:  document.NewMemberRepository(store),
		Commissions: commissions,
		QRCode:      qrCode,
		Metrics:     metrics,
		Logger:      logger,
	})
	siteConfig := NewSiteConfigService(SiteConfigServiceParams{
		SiteConfigRepo: document.NewSiteConfigRepository(store),
		Metrics:        metrics,
		Config:         cfg,
		Logger:         logger,
	})

	mockGateway := mockService.NewMockPaymentGateway(t)
	if gateway == nil {
		gateway = mockGateway
	}
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewCheckoutService(CheckoutServiceParams{
		Cart:        cart,
		Affiliates:  affiliates,
		Commissions: commissions,
		SiteConfig:  siteConfig,
		Gateway:     gateway,
		Publisher:   publisher,
		Metrics:     metrics,
		Config:      cfg,
		Logger:      logger,
	})

	return checkoutServiceFixtures{
		service:     svc,
		cart:        cart,
		commissions: commissions,
		affiliates:  affiliates,
		siteConfig:  siteConfig,
		gateway:     mockGateway,
		publisher:   publisher,
	}
}

func bootcampItem() *usecase.CartItemInput {
	return &usecase.CartItemInput{ID: "bootcamp-mtm", Name: "Bootcamp MTM", Price: 200, Quantity: 1, Type: entity.ItemTypeBootcamp}
}

// advanceToPayment fills the cart with item and walks the wizard to the payment step.
func advanceToPayment(t *testing.T, fx checkoutServiceFixtures, item *usecase.CartItemInput, details *usecase.CheckoutDetailsInput) {
	t.Helper()
	ctx := context.Background()

	_, err := fx.cart.AddItem(ctx, testOwner, item)
	require.NoError(t, err)
	_, err = fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)
	session, err := fx.service.SubmitDetails(ctx, testOwner, details)
	require.NoError(t, err)
	require.Equal(t, entity.CheckoutStepPayment, session.Step)
}

func TestCheckoutService_ExampleScenario(t *testing.T) {
	cfg := newServiceTestConfig()
	fx := createTestCheckoutService(t, payment.NewSimulatedGateway(cfg, newTestLogger()))
	ctx := context.Background()

	_, err := fx.cart.AddItem(ctx, testOwner, bootcampItem())
	require.NoError(t, err)
	view, err := fx.cart.AddItem(ctx, testOwner, bootcampItem())
	require.NoError(t, err)
	assert.InDelta(t, 400.0, view.TotalPrice, 0)

	fx.publisher.EXPECT().
		PublishOrderCompleted(mock.Anything, mock.MatchedBy(func(e *service.OrderCompletedEvent) bool {
			return e.Total == 400 && e.CustomerEmail == "a@x.com" && e.Currency == "EUR"
		})).
		Return(nil).
		Once()

	session, err := fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepDetails, session.Step)

	session, err = fx.service.SubmitDetails(ctx, testOwner, &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, session.Step)

	session, err = fx.service.SubmitPayment(ctx, testOwner, &usecase.PaymentInput{CardNumber: "4242"})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepConfirmation, session.Step)
	require.NotNil(t, session.Order)
	assert.InDelta(t, 400.0, session.Order.Total, 0)
	assert.Contains(t, session.Order.PaymentReference, "SIM-")

	after, err := fx.cart.GetCart(ctx, testOwner)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
}

func TestCheckoutService_ScannerRequiresTradingViewUsername(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()

	scanner := &usecase.CartItemInput{ID: "scanner", Name: "MTM Scanner", Price: 49, Quantity: 1, Type: entity.ItemTypeScanner}
	_, err := fx.cart.AddItem(ctx, testOwner, scanner)
	require.NoError(t, err)
	_, err = fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)

	_, err = fx.service.SubmitDetails(ctx, testOwner, &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "tradingViewUsername")

	session, err := fx.service.GetSession(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepDetails, session.Step)

	session, err = fx.service.SubmitDetails(ctx, testOwner, &usecase.CheckoutDetailsInput{
		Name:                "Ana",
		Email:               "a@x.com",
		TradingViewUsername: "ana_trades",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, session.Step)
	assert.Equal(t, "ana_trades", session.Form.TradingViewUsername)
}

func TestCheckoutService_SubmitDetails_Validation(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.CheckoutDetailsInput
		wantFields []string
	}{
		{name: "empty form", input: &usecase.CheckoutDetailsInput{}, wantFields: []string{"name", "email"}},
		{name: "blank name", input: &usecase.CheckoutDetailsInput{Name: "   ", Email: "a@x.com"}, wantFields: []string{"name"}},
		{name: "malformed email", input: &usecase.CheckoutDetailsInput{Name: "Ana", Email: "ana-at-x"}, wantFields: []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t, nil)
			ctx := context.Background()

			_, err := fx.cart.AddItem(ctx, testOwner, bootcampItem())
			require.NoError(t, err)
			_, err = fx.service.Begin(ctx, testOwner)
			require.NoError(t, err)

			_, err = fx.service.SubmitDetails(ctx, testOwner, tt.input)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			for _, field := range tt.wantFields {
				assert.Contains(t, validationErr.Fields(), field)
			}
		})
	}
}

func TestCheckoutService_IllegalTransitions(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()

	_, err := fx.service.Begin(ctx, testOwner)
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	_, err = fx.service.SubmitDetails(ctx, testOwner, &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})
	require.ErrorIs(t, err, domainerrors.ErrIllegalCheckoutTransition)

	_, err = fx.service.Back(ctx, testOwner)
	require.ErrorIs(t, err, domainerrors.ErrIllegalCheckoutTransition)

	_, err = fx.cart.AddItem(ctx, testOwner, bootcampItem())
	require.NoError(t, err)
	_, err = fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)

	_, err = fx.service.SubmitPayment(ctx, testOwner, nil)
	require.ErrorIs(t, err, domainerrors.ErrIllegalCheckoutTransition)

	_, err = fx.service.Begin(ctx, testOwner)
	require.ErrorIs(t, err, domainerrors.ErrIllegalCheckoutTransition)
}

func TestCheckoutService_BackAndCancel(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	session, err := fx.service.Back(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepDetails, session.Step)
	assert.Equal(t, "Ana", session.Form.Name, "going back keeps the form")

	session, err = fx.service.Back(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepCart, session.Step)

	_, err = fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)
	session, err = fx.service.Cancel(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepCart, session.Step)

	view, err := fx.cart.GetCart(ctx, testOwner)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1, "cancel has no side effects on the cart")
}

func TestCheckoutService_PaymentFailureKeepsState(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	fx.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(nil, errors.New("card declined")).Once()

	_, err := fx.service.SubmitPayment(ctx, testOwner, nil)
	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)

	session, err := fx.service.GetSession(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, session.Step)
	assert.False(t, session.Processing)
	assert.Nil(t, session.Order)

	view, err := fx.cart.GetCart(ctx, testOwner)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCheckoutService_RefusesTransitionsWhilePaymentInFlight(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	started := make(chan struct{})
	release := make(chan struct{})
	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req service.PaymentRequest) bool { return req.Amount == 200 })).
		RunAndReturn(func(context.Context, service.PaymentRequest) (*service.PaymentReceipt, error) {
			close(started)
			<-release

			return &service.PaymentReceipt{Reference: "REF-1"}, nil
		}).
		Once()
	fx.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(nil).Once()

	type result struct {
		session *entity.CheckoutSession
		err     error
	}
	done := make(chan result, 1)
	go func() {
		session, err := fx.service.SubmitPayment(ctx, testOwner, nil)
		done <- result{session: session, err: err}
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("payment never reached the gateway")
	}

	_, err := fx.service.Back(ctx, testOwner)
	require.ErrorIs(t, err, domainerrors.ErrPaymentInProgress)
	_, err = fx.service.Cancel(ctx, testOwner)
	require.ErrorIs(t, err, domainerrors.ErrPaymentInProgress)
	_, err = fx.service.SubmitPayment(ctx, testOwner, nil)
	require.ErrorIs(t, err, domainerrors.ErrPaymentInProgress)

	inFlight, err := fx.service.GetSession(ctx, testOwner)
	require.NoError(t, err)
	assert.True(t, inFlight.Processing)

	close(release)
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, entity.CheckoutStepConfirmation, got.session.Step)
	assert.Equal(t, "REF-1", got.session.Order.PaymentReference)
}

func TestCheckoutService_RecordsAffiliateCommission(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()

	member, err := fx.affiliates.RegisterMember(ctx, &usecase.MemberInput{Username: "ana", Name: "Ana", Email: "ana@x.com", Role: entity.RoleVIP})
	require.NoError(t, err)
	_, err = fx.affiliates.AssignAffiliateCode(ctx, member.ID, "ANA")
	require.NoError(t, err)

	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Rui", Email: "rui@x.com", AffiliateCode: "ana"})
	fx.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(&service.PaymentReceipt{Reference: "REF"}, nil).Once()
	fx.publisher.EXPECT().
		PublishOrderCompleted(mock.Anything, mock.MatchedBy(func(e *service.OrderCompletedEvent) bool { return e.AffiliateCode == "ana" })).
		Return(nil).
		Once()

	_, err = fx.service.SubmitPayment(ctx, testOwner, nil)
	require.NoError(t, err)

	list, err := fx.commissions.ListCommissions(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ana", list[0].AffiliateUsername)
	assert.Equal(t, "Rui", list[0].CustomerUsername)
	assert.Equal(t, "Bootcamp MTM", list[0].ProductName)
	assert.InDelta(t, 20.0, list[0].Amount, 0)
	assert.Equal(t, entity.CommissionStatusPending, list[0].Status)
}

func TestCheckoutService_NoCommissionWhenProgrammeDisabled(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()

	member, err := fx.affiliates.RegisterMember(ctx, &usecase.MemberInput{Username: "ana", Name: "Ana", Email: "ana@x.com", Role: entity.RoleVIP})
	require.NoError(t, err)
	_, err = fx.affiliates.AssignAffiliateCode(ctx, member.ID, "ANA")
	require.NoError(t, err)
	_, err = fx.siteConfig.UpdateConfig(ctx, map[string]any{"affiliateProgram": map[string]any{"enabled": false}})
	require.NoError(t, err)

	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Rui", Email: "rui@x.com", AffiliateCode: "ANA"})
	fx.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(&service.PaymentReceipt{Reference: "REF"}, nil).Once()
	fx.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(nil).Once()

	_, err = fx.service.SubmitPayment(ctx, testOwner, nil)
	require.NoError(t, err)

	list, err := fx.commissions.ListCommissions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCheckoutService_CartEmptiedBeforePayment(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	require.NoError(t, fx.cart.ClearCart(ctx, testOwner))

	_, err := fx.service.SubmitPayment(ctx, testOwner, nil)
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_PublishFailureDoesNotUndoOrder(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	fx.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(&service.PaymentReceipt{Reference: "REF"}, nil).Once()
	fx.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	session, err := fx.service.SubmitPayment(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepConfirmation, session.Step)

	next, err := fx.service.Cancel(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepCart, next.Step)
	assert.Nil(t, next.Order)
	assert.NotEqual(t, session.ID, next.ID)
}

func TestCheckoutService_SubmitPayment_RechecksScannerRule(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	ctx := context.Background()
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	scanner := &usecase.CartItemInput{ID: "scanner", Name: "MTM Scanner", Price: 49, Quantity: 1, Type: entity.ItemTypeScanner}
	_, err := fx.cart.AddItem(ctx, testOwner, scanner)
	require.NoError(t, err)

	_, err = fx.service.SubmitPayment(ctx, testOwner, nil)
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "tradingViewUsername")
	fx.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)

	session, err := fx.service.GetSession(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepDetails, session.Step)
	assert.False(t, session.Processing)
	assert.Nil(t, session.Order)

	view, err := fx.cart.GetCart(ctx, testOwner)
	require.NoError(t, err)
	assert.Len(t, view.Items, 2, "a refused payment leaves the cart alone")
}

func TestCheckoutService_SubmitPayment_SurvivesCallerCancellation(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ service.PaymentRequest) (*service.PaymentReceipt, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(200 * time.Millisecond):
			}

			return &service.PaymentReceipt{Reference: "REF-LATE"}, nil
		}).
		Once()
	fx.publisher.EXPECT().PublishOrderCompleted(mock.Anything, mock.Anything).Return(nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	session, err := fx.service.SubmitPayment(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepConfirmation, session.Step)
	assert.Equal(t, "REF-LATE", session.Order.PaymentReference)

	view, err := fx.cart.GetCart(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCheckoutService_SubmitPayment_BoundedByPaymentTimeout(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	impl, ok := fx.service.(*checkoutService)
	require.True(t, ok)
	impl.paymentTimeout = 20 * time.Millisecond
	advanceToPayment(t, fx, bootcampItem(), &usecase.CheckoutDetailsInput{Name: "Ana", Email: "a@x.com"})

	fx.gateway.EXPECT().
		Charge(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ service.PaymentRequest) (*service.PaymentReceipt, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		}).
		Once()

	_, err := fx.service.SubmitPayment(context.Background(), testOwner, nil)
	require.ErrorIs(t, err, domainerrors.ErrPaymentFailed)

	session, err := fx.service.GetSession(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, session.Step)
	assert.False(t, session.Processing)
}

func TestCheckoutService_ReadsDoNotCreateSessions(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	impl, ok := fx.service.(*checkoutService)
	require.True(t, ok)
	ctx := context.Background()

	for i := range 1000 {
		ownerID := fmt.Sprintf("anonymous-%d", i)
		session, err := fx.service.GetSession(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckoutStepCart, session.Step)
		_, err = fx.service.Begin(ctx, ownerID)
		require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	}
	assert.Empty(t, impl.sessions)

	_, err := fx.cart.AddItem(ctx, testOwner, bootcampItem())
	require.NoError(t, err)
	_, err = fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)
	assert.Len(t, impl.sessions, 1)
}

func TestCheckoutService_EvictsIdleSessions(t *testing.T) {
	fx := createTestCheckoutService(t, nil)
	impl, ok := fx.service.(*checkoutService)
	require.True(t, ok)
	clock := &fixedClock{t: time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)}
	impl.now = clock.now
	ctx := context.Background()

	_, err := fx.cart.AddItem(ctx, "idle-owner", bootcampItem())
	require.NoError(t, err)
	_, err = fx.service.Begin(ctx, "idle-owner")
	require.NoError(t, err)

	clock.advance(sessionIdleTTL + time.Minute)
	_, err = fx.cart.AddItem(ctx, testOwner, bootcampItem())
	require.NoError(t, err)
	_, err = fx.service.Begin(ctx, testOwner)
	require.NoError(t, err)

	assert.NotContains(t, impl.sessions, "idle-owner")
	assert.Contains(t, impl.sessions, testOwner)

	session, err := fx.service.GetSession(ctx, "idle-owner")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepCart, session.Step)
}
