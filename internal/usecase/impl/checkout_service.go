package impl

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultPaymentTimeout = 30 * time.Second
	sessionIdleTTL        = 2 * time.Hour
	sessionSweepInterval  = time.Minute
)

// checkoutService implements the CheckoutUsecase interface. Sessions live in memory only;
// reads never create one and idle sessions are evicted.
type checkoutService struct {
	mu        sync.Mutex
	sessions  map[string]*entity.CheckoutSession
	lastSweep time.Time

	cart           usecase.CartUsecase
	affiliates     usecase.AffiliateUsecase
	commissions    usecase.CommissionUsecase
	siteConfig     usecase.SiteConfigUsecase
	gateway        service.PaymentGateway
	publisher      service.EventPublisher
	metrics        service.Metrics
	currency       string
	paymentTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart        usecase.CartUsecase
	Affiliates  usecase.AffiliateUsecase
	Commissions usecase.CommissionUsecase
	SiteConfig  usecase.SiteConfigUsecase
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Metrics     service.Metrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := "EUR"
	paymentTimeout := defaultPaymentTimeout
	if params.Config != nil && params.Config.Checkout != nil {
		if params.Config.Checkout.Currency != "" {
			currency = params.Config.Checkout.Currency
		}
		if params.Config.Checkout.PaymentTimeout > 0 {
			paymentTimeout = params.Config.Checkout.PaymentTimeout
		}
	}

	return &checkoutService{
		sessions:       make(map[string]*entity.CheckoutSession),
		cart:           params.Cart,
		affiliates:     params.Affiliates,
		commissions:    params.Commissions,
		siteConfig:     params.SiteConfig,
		gateway:        params.Gateway,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		currency:       currency,
		paymentTimeout: paymentTimeout,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *checkoutService) GetSession(_ context.Context, ownerID string) (*entity.CheckoutSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.sessionLocked(ownerID).Clone(), nil
}

func (srv *checkoutService) Begin(ctx context.Context, ownerID string) (*entity.CheckoutSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session := srv.sessionLocked(ownerID)
	if session.Processing {
		return nil, domainerrors.ErrPaymentInProgress
	}
	if session.Step.IsTerminal() {
		// a confirmed order starts a fresh wizard
		session = srv.newSession(ownerID)
	}
	if !session.Step.CanTransitionTo(entity.CheckoutStepDetails) {
		return nil, illegalCheckoutTransition(session.Step, entity.CheckoutStepDetails)
	}

	cart, err := srv.cart.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	srv.moveLocked(session, entity.CheckoutStepDetails)
	srv.storeLocked(session)

	return session.Clone(), nil
}

func (srv *checkoutService) SubmitDetails(ctx context.Context, ownerID string, input *usecase.CheckoutDetailsInput) (*entity.CheckoutSession, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("details are required")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	session := srv.sessionLocked(ownerID)
	if session.Step != entity.CheckoutStepDetails {
		return nil, illegalCheckoutTransition(session.Step, entity.CheckoutStepPayment)
	}

	cart, err := srv.cart.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	form := entity.CheckoutForm{
		Name:                strings.TrimSpace(input.Name),
		Email:               strings.TrimSpace(input.Email),
		TradingViewUsername: strings.TrimSpace(input.TradingViewUsername),
		AffiliateCode:       strings.TrimSpace(input.AffiliateCode),
	}
	if err := validateCheckoutForm(form, cart.HasItemType(entity.ItemTypeScanner)); err != nil {
		return nil, err
	}

	session.Form = form
	srv.moveLocked(session, entity.CheckoutStepPayment)

	return session.Clone(), nil
}

func (srv *checkoutService) Back(_ context.Context, ownerID string) (*entity.CheckoutSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session := srv.sessionLocked(ownerID)
	if session.Processing {
		return nil, domainerrors.ErrPaymentInProgress
	}

	var previous entity.CheckoutStep
	switch session.Step {
	case entity.CheckoutStepDetails:
		previous = entity.CheckoutStepCart
	case entity.CheckoutStepPayment:
		previous = entity.CheckoutStepDetails
	default:
		return nil, domainerrors.ErrIllegalCheckoutTransition.WithDetails("no previous step from " + session.Step.String())
	}

	srv.moveLocked(session, previous)

	return session.Clone(), nil
}

func (srv *checkoutService) Cancel(_ context.Context, ownerID string) (*entity.CheckoutSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session := srv.sessionLocked(ownerID)
	if session.Processing {
		return nil, domainerrors.ErrPaymentInProgress
	}

	if session.Step.IsTerminal() {
		delete(srv.sessions, ownerID)

		return srv.newSession(ownerID).Clone(), nil
	}
	srv.moveLocked(session, entity.CheckoutStepCart)

	return session.Clone(), nil
}

// SubmitPayment charges the cart total. The session lock is released while the gateway runs;
// the processing flag keeps every other transition out until it returns. Once started, a charge
// is detached from ctx and bounded only by the payment timeout.
func (srv *checkoutService) SubmitPayment(ctx context.Context, ownerID string, _ *usecase.PaymentInput) (*entity.CheckoutSession, error) {
	srv.mu.Lock()
	session := srv.sessionLocked(ownerID)
	if session.Processing {
		srv.mu.Unlock()

		return nil, domainerrors.ErrPaymentInProgress
	}
	if session.Step != entity.CheckoutStepPayment {
		srv.mu.Unlock()

		return nil, illegalCheckoutTransition(session.Step, entity.CheckoutStepConfirmation)
	}

	cart, err := srv.cart.Snapshot(ctx, ownerID)
	if err != nil {
		srv.mu.Unlock()

		return nil, err
	}
	if len(cart.Items) == 0 {
		srv.mu.Unlock()

		return nil, domainerrors.ErrEmptyCart
	}
	// the cart may have changed since the details step
	if err := validateCheckoutForm(session.Form, cart.HasItemType(entity.ItemTypeScanner)); err != nil {
		srv.moveLocked(session, entity.CheckoutStepDetails)
		srv.mu.Unlock()

		return nil, err
	}

	session.Processing = true
	form := session.Form
	srv.mu.Unlock()

	detached := context.WithoutCancel(ctx)

	orderID := uuid.New()
	total := cart.TotalPrice()

	srv.log(ctx).Info("Charging checkout",
		slog.String("owner_id", ownerID),
		slog.String("order_id", orderID.String()),
		slog.String("total", total.StringFixed(2)),
	)

	chargeCtx, cancel := context.WithTimeout(detached, srv.paymentTimeout)
	receipt, chargeErr := srv.gateway.Charge(chargeCtx, service.PaymentRequest{
		OrderID:       orderID.String(),
		OwnerID:       ownerID,
		Amount:        total.InexactFloat64(),
		Currency:      srv.currency,
		CustomerEmail: form.Email,
	})
	cancel()

	srv.mu.Lock()
	session.Processing = false
	if chargeErr != nil {
		session.UpdatedAt = srv.now()
		srv.mu.Unlock()

		srv.metrics.PaymentFailed()
		srv.log(ctx).Warn("Payment failed",
			slog.String("order_id", orderID.String()),
			slog.Any("error", chargeErr),
		)

		return nil, domainerrors.ErrPaymentFailed.WithDetails(chargeErr.Error())
	}

	order := &entity.Order{
		ID:               orderID,
		OwnerID:          ownerID,
		Items:            cart.Items,
		Total:            total.InexactFloat64(),
		Currency:         srv.currency,
		Customer:         form,
		PaymentReference: receipt.Reference,
		CreatedAt:        srv.now(),
	}
	session.Order = order
	srv.moveLocked(session, entity.CheckoutStepConfirmation)
	confirmed := session.Clone()
	srv.mu.Unlock()

	// the order is paid; follow-up work must not be cut short by the caller
	if err := srv.cart.ClearCart(detached, ownerID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after payment", slog.Any("error", err))
	}
	srv.metrics.OrderCompleted(order.Total)
	srv.recordCommission(detached, order, total)
	srv.publishOrder(detached, order)

	srv.log(ctx).Info("Order confirmed",
		slog.String("order_id", orderID.String()),
		slog.String("payment_reference", order.PaymentReference),
	)

	return confirmed, nil
}

// recordCommission credits the affiliate behind the order, if any. Failures never undo the order.
func (srv *checkoutService) recordCommission(ctx context.Context, order *entity.Order, total decimal.Decimal) {
	code := affiliateCodeOf(order)
	if code == "" {
		return
	}

	siteConfig, err := srv.siteConfig.GetConfig(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to read affiliate programme settings", slog.Any("error", err))

		return
	}
	program := siteConfig.AffiliateProgram
	if !program.Enabled {
		return
	}

	affiliate, err := srv.affiliates.FindByCode(ctx, code)
	if err != nil {
		srv.log(ctx).Info("Affiliate code did not resolve, no commission recorded",
			slog.String("code", code),
			slog.Any("error", err),
		)

		return
	}

	amount := total.Mul(decimal.NewFromFloat(program.CommissionRate)).Div(decimal.NewFromInt(100)).Round(2)
	_, err = srv.commissions.RecordCommission(ctx, &usecase.CommissionInput{
		AffiliateUsername: affiliate.Username,
		CustomerUsername:  order.Customer.Name,
		ProductName:       productNames(order.Items),
		Amount:            amount.InexactFloat64(),
		Date:              &order.CreatedAt,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record commission",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *checkoutService) publishOrder(ctx context.Context, order *entity.Order) {
	itemIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		itemIDs = append(itemIDs, item.ID)
	}

	event := &service.OrderCompletedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		OwnerID:       order.OwnerID,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		AffiliateCode: affiliateCodeOf(order),
		ItemIDs:       itemIDs,
		Total:         order.Total,
		Currency:      order.Currency,
		CompletedAt:   order.CreatedAt,
	}
	if err := srv.publisher.PublishOrderCompleted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// sessionLocked returns the stored session of the owner, or an unstored fresh one.
// Callers must hold srv.mu and call storeLocked to keep a fresh session.
func (srv *checkoutService) sessionLocked(ownerID string) *entity.CheckoutSession {
	if session, ok := srv.sessions[ownerID]; ok {
		return session
	}

	return srv.newSession(ownerID)
}

func (srv *checkoutService) newSession(ownerID string) *entity.CheckoutSession {
	now := srv.now()

	return &entity.CheckoutSession{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Step:      entity.CheckoutStepCart,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (srv *checkoutService) storeLocked(session *entity.CheckoutSession) {
	srv.sweepLocked()
	srv.sessions[session.OwnerID] = session
}

// sweepLocked evicts sessions untouched for longer than sessionIdleTTL. A session
// with a payment in flight is never evicted.
func (srv *checkoutService) sweepLocked() {
	now := srv.now()
	if now.Sub(srv.lastSweep) < sessionSweepInterval {
		return
	}
	srv.lastSweep = now

	for ownerID, session := range srv.sessions {
		if !session.Processing && now.Sub(session.UpdatedAt) > sessionIdleTTL {
			delete(srv.sessions, ownerID)
		}
	}
}

func (srv *checkoutService) moveLocked(session *entity.CheckoutSession, next entity.CheckoutStep) {
	session.Step = next
	session.UpdatedAt = srv.now()
}

// validateCheckoutForm runs the validate tags of the details form and adds the rule
// that scanner products need a TradingView username.
func validateCheckoutForm(form entity.CheckoutForm, needsTradingView bool) error {
	fields := domainerrors.FieldErrors{}
	details := usecase.CheckoutDetailsInput{
		Name:                form.Name,
		Email:               form.Email,
		TradingViewUsername: form.TradingViewUsername,
		AffiliateCode:       form.AffiliateCode,
	}
	if err := validateStruct(&details); err != nil {
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		maps.Copy(fields, validationErr.Fields())
	}
	if needsTradingView && form.TradingViewUsername == "" {
		fields["tradingViewUsername"] = "required for scanner products"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

// affiliateCodeOf prefers the code typed in the form over one captured with a cart line.
func affiliateCodeOf(order *entity.Order) string {
	if order.Customer.AffiliateCode != "" {
		return order.Customer.AffiliateCode
	}
	for _, item := range order.Items {
		if item.Details != nil && item.Details.AffiliateCode != "" {
			return item.Details.AffiliateCode
		}
	}

	return ""
}

func productNames(items []entity.CartItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}

	return strings.Join(names, ", ")
}

func illegalCheckoutTransition(from, to entity.CheckoutStep) error {
	return domainerrors.ErrIllegalCheckoutTransition.WithDetails(from.String() + " -> " + to.String())
}
