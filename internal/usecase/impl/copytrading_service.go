package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	minTradeVolume     = 0.01
	openPriceSpread    = 0.01
	closePriceSpread   = 0.02
	stopLossDistance   = 0.01
	takeProfitDistance = 0.02
)

//nolint:gochecknoglobals
var (
	defaultTradeSymbols = []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD", "BTCUSD"}
	referencePrices     = map[string]float64{
		"EURUSD": 1.085,
		"GBPUSD": 1.27,
		"USDJPY": 149.5,
		"XAUUSD": 2350,
		"BTCUSD": 64000,
		"US30":   39000,
		"NAS100": 18500,
	}
)

// copytradingService implements the CopytradingUsecase interface.
type copytradingService struct {
	mu         sync.Mutex
	loaded     bool
	accounts   []*entity.CopytradingAccount
	operations []*entity.TradeOperation
	syncing    atomic.Bool

	copytradingRepo repository.CopytradingRepository
	siteConfig      usecase.SiteConfigUsecase
	bridge          service.BrokerBridge
	metrics         service.Metrics
	settings        config.CopytradingConfig
	rng             *rand.Rand
	now             func() time.Time
	logger          *slog.Logger
}

// CopytradingServiceParams holds dependencies for CopytradingService, injected by Fx.
type CopytradingServiceParams struct {
	fx.In

	CopytradingRepo repository.CopytradingRepository
	SiteConfig      usecase.SiteConfigUsecase
	Bridge          service.BrokerBridge
	Metrics         service.Metrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCopytradingService is the constructor for copytradingService.
func NewCopytradingService(params CopytradingServiceParams) usecase.CopytradingUsecase {
	var settings config.CopytradingConfig
	if params.Config != nil && params.Config.Copytrading != nil {
		settings = *params.Config.Copytrading
	}
	settings.Symbols = tradableSymbols(settings.Symbols, params.Logger)
	if settings.PromotionPolicy == "" {
		settings.PromotionPolicy = constants.PromotionPolicyConnectivity
	}

	return &copytradingService{
		copytradingRepo: params.CopytradingRepo,
		siteConfig:      params.SiteConfig,
		bridge:          params.Bridge,
		metrics:         params.Metrics,
		settings:        settings,
		rng:             rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // simulated trade feed
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *copytradingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *copytradingService) RegisterAccount(ctx context.Context, input *usecase.RegisterAccountInput) (*entity.CopytradingAccount, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("account is required")
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"userId": "required"})
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	siteConfig, err := srv.siteConfig.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read copytrading defaults")
	}
	defaults := siteConfig.Copytrading

	account := &entity.CopytradingAccount{
		UserID:        input.UserID,
		BrokerName:    firstNonEmpty(input.BrokerName, defaults.DefaultBroker),
		ServerName:    firstNonEmpty(input.ServerName, defaults.DefaultServer),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		Status:        entity.AccountStatusPending,
		LastSync:      srv.now(),
		RiskSettings:  defaults.DefaultRiskSettings,
	}
	if input.RiskSettings != nil {
		account.RiskSettings = *input.RiskSettings
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	if srv.findAccountLocked(input.UserID) != nil {
		return nil, domainerrors.ErrAccountAlreadyExists.WithDetails(input.UserID)
	}
	srv.accounts = append(srv.accounts, account)
	srv.persistAccountsLocked(ctx)

	srv.log(ctx).Info("Copytrading account registered",
		slog.String("user_id", account.UserID),
		slog.String("broker", account.BrokerName),
	)

	return copyAccount(account), nil
}

func (srv *copytradingService) GetAccount(ctx context.Context, userID string) (*entity.CopytradingAccount, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	account := srv.findAccountLocked(userID)
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound.WithDetails(userID)
	}

	return copyAccount(account), nil
}

func (srv *copytradingService) ListAccounts(ctx context.Context) ([]*entity.CopytradingAccount, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	accounts := make([]*entity.CopytradingAccount, 0, len(srv.accounts))
	for _, a := range srv.accounts {
		accounts = append(accounts, copyAccount(a))
	}

	return accounts, nil
}

func (srv *copytradingService) UpdateAccountStatus(ctx context.Context, userID string, status entity.AccountStatus) (*entity.CopytradingAccount, error) {
	if !status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"status": "must be one of pending, active, error, disabled"})
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	account := srv.findAccountLocked(userID)
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound.WithDetails(userID)
	}
	account.Status = status
	account.LastSync = srv.now()
	srv.persistAccountsLocked(ctx)

	return copyAccount(account), nil
}

func (srv *copytradingService) UpdateRiskSettings(ctx context.Context, userID string, settings *entity.RiskSettings) (*entity.CopytradingAccount, error) {
	if settings == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("risk settings are required")
	}
	if err := validateStruct(settings); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	account := srv.findAccountLocked(userID)
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound.WithDetails(userID)
	}
	account.RiskSettings = *settings
	srv.persistAccountsLocked(ctx)

	return copyAccount(account), nil
}

func (srv *copytradingService) ListOperations(ctx context.Context, status entity.TradeStatus) ([]*entity.TradeOperation, error) {
	switch status {
	case "", entity.TradeStatusOpen, entity.TradeStatusClosed, entity.TradeStatusPending:
	default:
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"status": "must be one of open, closed, pending"})
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	operations := make([]*entity.TradeOperation, 0, len(srv.operations))
	for _, op := range srv.operations {
		if status == "" || op.Status == status {
			clone := *op
			operations = append(operations, &clone)
		}
	}
	sortOperations(operations)

	return operations, nil
}

// SyncTrades runs one sync pass: resolve pending accounts, refresh lastSync, then advance the trade feed.
// Changes applied before a failure are kept.
func (srv *copytradingService) SyncTrades(ctx context.Context) (*usecase.SyncReport, error) {
	if !srv.syncing.CompareAndSwap(false, true) {
		srv.log(ctx).Info("Sync pass already running, skipping")

		return &usecase.SyncReport{StartedAt: srv.now(), Skipped: true}, nil
	}
	defer srv.syncing.Store(false)

	report := &usecase.SyncReport{StartedAt: srv.now()}

	err := srv.syncAccounts(ctx, report)
	if err == nil {
		srv.simulateTrades(ctx, report)
	}
	report.Duration = srv.now().Sub(report.StartedAt)

	srv.metrics.SyncCompleted(report.Promoted, report.Failed, report.TradesOpened, report.TradesClosed, err != nil)
	if err != nil {
		return report, err
	}

	srv.log(ctx).Info("Sync pass completed",
		slog.Int("accounts", report.Accounts),
		slog.Int("promoted", report.Promoted),
		slog.Int("failed", report.Failed),
		slog.Int("trades_opened", report.TradesOpened),
		slog.Int("trades_closed", report.TradesClosed),
	)

	return report, nil
}

// syncAccounts decides the status of every pending account. Broker checks run without the lock.
func (srv *copytradingService) syncAccounts(ctx context.Context, report *usecase.SyncReport) error {
	srv.mu.Lock()
	srv.ensureLoadedLocked(ctx)
	pending := make([]*entity.CopytradingAccount, 0)
	for _, a := range srv.accounts {
		if a.Status == entity.AccountStatusPending {
			pending = append(pending, copyAccount(a))
		}
	}
	srv.mu.Unlock()

	decisions := make(map[string]entity.AccountStatus, len(pending))
	for _, account := range pending {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "sync pass interrupted")
		}
		decisions[account.UserID] = srv.resolvePending(ctx, account)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	now := srv.now()
	for _, account := range srv.accounts {
		if next, ok := decisions[account.UserID]; ok && account.Status == entity.AccountStatusPending {
			account.Status = next
			if next == entity.AccountStatusActive {
				report.Promoted++
			} else {
				report.Failed++
			}
		}
		account.LastSync = now
	}
	report.Accounts = len(srv.accounts)
	srv.persistAccountsLocked(ctx)

	return nil
}

// resolvePending applies the promotion policy to one pending account.
func (srv *copytradingService) resolvePending(ctx context.Context, account *entity.CopytradingAccount) entity.AccountStatus {
	if srv.settings.PromotionPolicy == constants.PromotionPolicyOnSync {
		return entity.AccountStatusActive
	}

	if err := srv.bridge.CheckConnectivity(ctx, account); err != nil {
		srv.log(ctx).Warn("Broker connectivity check failed",
			slog.String("user_id", account.UserID),
			slog.String("broker", account.BrokerName),
			slog.Any("error", err),
		)

		return entity.AccountStatusError
	}

	return entity.AccountStatusActive
}

// simulateTrades closes open trades at random, maybe opens one for an active account and trims history.
func (srv *copytradingService) simulateTrades(ctx context.Context, report *usecase.SyncReport) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	now := srv.now()
	open := 0
	for _, op := range srv.operations {
		if op.Status != entity.TradeStatusOpen {
			continue
		}
		if srv.rng.Float64() < srv.settings.CloseProbability {
			op.Close(srv.closePrice(op.OpenPrice), now)
			report.TradesClosed++

			continue
		}
		open++
	}

	if open < srv.settings.MaxOpenTrades {
		if account := srv.pickActiveAccountLocked(); account != nil && srv.rng.Float64() < srv.settings.OpenProbability {
			srv.operations = append(srv.operations, srv.newOperation(account, now))
			report.TradesOpened++
			open++
		}
	}
	report.OpenOperations = open

	sortOperations(srv.operations)
	if retain := srv.settings.RetainOperations; retain > 0 && len(srv.operations) > retain {
		srv.operations = srv.operations[:retain]
	}

	if err := srv.copytradingRepo.SaveOperations(ctx, srv.operations); err != nil {
		srv.log(ctx).Error("Failed to persist copytrading operations", slog.Any("error", err))
		srv.metrics.StoreWriteFailed(constants.KeyCopytradingOperations)
	}
}

func (srv *copytradingService) newOperation(account *entity.CopytradingAccount, now time.Time) *entity.TradeOperation {
	symbol := srv.settings.Symbols[srv.rng.IntN(len(srv.settings.Symbols))]
	tradeType := entity.TradeTypeBuy
	if srv.rng.IntN(2) == 1 {
		tradeType = entity.TradeTypeSell
	}

	reference := referencePrices[symbol]
	openPrice := roundPrice(reference * (1 + (srv.rng.Float64()-0.5)*openPriceSpread))

	maxVolume := decimal.NewFromFloat(account.RiskSettings.MaxVolume).Mul(decimal.NewFromFloat(account.RiskSettings.CopyRatio))
	volume := decimal.NewFromFloat(srv.rng.Float64()).Mul(maxVolume).Round(2)
	if volume.LessThan(decimal.NewFromFloat(minTradeVolume)) {
		volume = decimal.NewFromFloat(minTradeVolume)
	}

	op := &entity.TradeOperation{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Type:      tradeType,
		OpenTime:  now,
		OpenPrice: openPrice,
		Volume:    volume.InexactFloat64(),
		Status:    entity.TradeStatusOpen,
	}

	direction := 1.0
	if tradeType == entity.TradeTypeSell {
		direction = -1
	}
	if account.RiskSettings.UseStopLoss {
		stopLoss := roundPrice(openPrice * (1 - direction*stopLossDistance))
		op.StopLoss = &stopLoss
	}
	if account.RiskSettings.UseTakeProfit {
		takeProfit := roundPrice(openPrice * (1 + direction*takeProfitDistance))
		op.TakeProfit = &takeProfit
	}

	return op
}

func (srv *copytradingService) closePrice(openPrice float64) float64 {
	return roundPrice(openPrice * (1 + (srv.rng.Float64()-0.5)*closePriceSpread))
}

func (srv *copytradingService) pickActiveAccountLocked() *entity.CopytradingAccount {
	active := make([]*entity.CopytradingAccount, 0, len(srv.accounts))
	for _, a := range srv.accounts {
		if a.Status == entity.AccountStatusActive {
			active = append(active, a)
		}
	}
	if len(active) == 0 {
		return nil
	}

	return active[srv.rng.IntN(len(active))]
}

func (srv *copytradingService) findAccountLocked(userID string) *entity.CopytradingAccount {
	for _, a := range srv.accounts {
		if a.UserID == userID {
			return a
		}
	}

	return nil
}

// ensureLoadedLocked hydrates accounts and operations once. Unreadable documents start empty.
func (srv *copytradingService) ensureLoadedLocked(ctx context.Context) {
	if srv.loaded {
		return
	}
	srv.loaded = true

	accounts, err := srv.copytradingRepo.LoadAccounts(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load copytrading accounts, starting empty", slog.Any("error", err))
		accounts = []*entity.CopytradingAccount{}
	}
	srv.accounts = accounts

	operations, err := srv.copytradingRepo.LoadOperations(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load copytrading operations, starting empty", slog.Any("error", err))
		operations = []*entity.TradeOperation{}
	}
	srv.operations = operations
}

func (srv *copytradingService) persistAccountsLocked(ctx context.Context) {
	if err := srv.copytradingRepo.SaveAccounts(ctx, srv.accounts); err != nil {
		srv.log(ctx).Error("Failed to persist copytrading accounts", slog.Any("error", err))
		srv.metrics.StoreWriteFailed(constants.KeyCopytradingAccounts)
	}
}

// sortOperations orders trades newest first by open time.
func sortOperations(operations []*entity.TradeOperation) {
	slices.SortStableFunc(operations, func(a, b *entity.TradeOperation) int {
		return b.OpenTime.Compare(a.OpenTime)
	})
}

// tradableSymbols keeps the configured symbols that have a reference price.
// Unknown symbols are dropped with a warning; an empty result falls back to the defaults.
func tradableSymbols(configured []string, logger *slog.Logger) []string {
	symbols := make([]string, 0, len(configured))
	for _, symbol := range configured {
		if _, ok := referencePrices[symbol]; !ok {
			if logger != nil {
				logger.Warn("Ignoring copytrading symbol without reference price", slog.String("symbol", symbol))
			}

			continue
		}
		symbols = append(symbols, symbol)
	}
	if len(symbols) == 0 {
		return defaultTradeSymbols
	}

	return symbols
}

func roundPrice(price float64) float64 {
	return decimal.NewFromFloat(price).Round(5).InexactFloat64()
}

func copyAccount(a *entity.CopytradingAccount) *entity.CopytradingAccount {
	clone := *a

	return &clone
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
