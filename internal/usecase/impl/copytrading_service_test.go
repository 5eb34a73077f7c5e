package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	mockService "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// copytradingServiceFixtures holds all test dependencies for copytrading service tests.
type copytradingServiceFixtures struct {
	service usecase.CopytradingUsecase
	impl    *copytradingService
	repo    repository.CopytradingRepository
	bridge  *mockService.MockBrokerBridge
	clock   *fixedClock
}

func createTestCopytradingService(t *testing.T) copytradingServiceFixtures {
	store := memory.NewKeyValueStore()
	metrics := newLenientMetrics(t)
	cfg := newServiceTestConfig()
	logger := newTestLogger()

	siteConfig := NewSiteConfigService(SiteConfigServiceParams{
		SiteConfigRepo: document.NewSiteConfigRepository(store),
		Metrics:        metrics,
		Config:         cfg,
		Logger:         logger,
	})
	repo := document.NewCopytradingRepository(store)
	bridge := mockService.NewMockBrokerBridge(t)

	svc := NewCopytradingService(CopytradingServiceParams{
		CopytradingRepo: repo,
		SiteConfig:      siteConfig,
		Bridge:          bridge,
		Metrics:         metrics,
		Config:          cfg,
		Logger:          logger,
	})
	impl, ok := svc.(*copytradingService)
	require.True(t, ok)

	clock := &fixedClock{t: time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)}
	impl.now = clock.now
	impl.settings.OpenProbability = 0
	impl.settings.CloseProbability = 0

	return copytradingServiceFixtures{
		service: svc,
		impl:    impl,
		repo:    repo,
		bridge:  bridge,
		clock:   clock,
	}
}

func registerTestAccount(t *testing.T, svc usecase.CopytradingUsecase, userID string) *entity.CopytradingAccount {
	t.Helper()

	account, err := svc.RegisterAccount(context.Background(), &usecase.RegisterAccountInput{
		UserID:        userID,
		AccountNumber: "1000" + userID,
	})
	require.NoError(t, err)

	return account
}

func TestCopytradingService_RegisterAccount(t *testing.T) {
	fx := createTestCopytradingService(t)
	ctx := context.Background()

	account := registerTestAccount(t, fx.service, "u1")
	assert.Equal(t, entity.AccountStatusPending, account.Status)
	assert.Equal(t, "Vantage", account.BrokerName, "broker defaults from the site config")
	assert.InDelta(t, 1.0, account.RiskSettings.CopyRatio, 0)

	_, err := fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{UserID: "u1", AccountNumber: "2"})
	require.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)

	_, err = fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{AccountNumber: "2"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterAccount(ctx, &usecase.RegisterAccountInput{
		UserID:        "u2",
		AccountNumber: "2",
		RiskSettings:  &entity.RiskSettings{MaxVolume: 0, CopyRatio: 1},
	})
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "maxVolume")
}

func TestCopytradingService_SyncPromotesPending(t *testing.T) {
	tests := []struct {
		name       string
		policy     string
		setupMock  func(bridge *mockService.MockBrokerBridge)
		wantStatus entity.AccountStatus
	}{
		{
			name:       "on sync policy promotes without asking the broker",
			policy:     constants.PromotionPolicyOnSync,
			setupMock:  func(*mockService.MockBrokerBridge) {},
			wantStatus: entity.AccountStatusActive,
		},
		{
			name:   "connectivity policy promotes reachable accounts",
			policy: constants.PromotionPolicyConnectivity,
			setupMock: func(bridge *mockService.MockBrokerBridge) {
				bridge.EXPECT().CheckConnectivity(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entity.AccountStatusActive,
		},
		{
			name:   "connectivity failure marks the account as error",
			policy: constants.PromotionPolicyConnectivity,
			setupMock: func(bridge *mockService.MockBrokerBridge) {
				bridge.EXPECT().CheckConnectivity(mock.Anything, mock.Anything).Return(errors.New("login refused")).Once()
			},
			wantStatus: entity.AccountStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCopytradingService(t)
			fx.impl.settings.PromotionPolicy = tt.policy
			tt.setupMock(fx.bridge)
			ctx := context.Background()

			registerTestAccount(t, fx.service, "u1")
			fx.clock.advance(time.Minute)

			report, err := fx.service.SyncTrades(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, report.Accounts)

			account, err := fx.service.GetAccount(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, account.Status)
			assert.Equal(t, fx.clock.now(), account.LastSync)

			// resolved accounts are not checked again
			_, err = fx.service.SyncTrades(ctx)
			require.NoError(t, err)
		})
	}
}

func TestCopytradingService_SyncSkipsWhileRunning(t *testing.T) {
	fx := createTestCopytradingService(t)
	ctx := context.Background()
	registerTestAccount(t, fx.service, "u1")

	started := make(chan struct{})
	release := make(chan struct{})
	fx.bridge.EXPECT().
		CheckConnectivity(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.CopytradingAccount) error {
			close(started)
			<-release

			return nil
		}).
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := fx.service.SyncTrades(ctx)
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("sync pass never reached the broker")
	}

	report, err := fx.service.SyncTrades(ctx)
	require.NoError(t, err)
	assert.True(t, report.Skipped)

	// the account listing stays available while the broker is queried
	accounts, err := fx.service.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, entity.AccountStatusPending, accounts[0].Status)

	close(release)
	require.NoError(t, <-done)

	account, err := fx.service.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusActive, account.Status)
}

func TestCopytradingService_SyncOpensAndClosesTrades(t *testing.T) {
	fx := createTestCopytradingService(t)
	fx.impl.settings.PromotionPolicy = constants.PromotionPolicyOnSync
	fx.impl.settings.OpenProbability = 1
	ctx := context.Background()
	registerTestAccount(t, fx.service, "u1")

	report, err := fx.service.SyncTrades(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Promoted)
	assert.Equal(t, 1, report.TradesOpened)

	open, err := fx.service.ListOperations(ctx, entity.TradeStatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	op := open[0]
	assert.Equal(t, "EURUSD", op.Symbol)
	assert.GreaterOrEqual(t, op.Volume, 0.01)
	require.NotNil(t, op.StopLoss)
	require.NotNil(t, op.TakeProfit)
	if op.Type == entity.TradeTypeBuy {
		assert.Less(t, *op.StopLoss, op.OpenPrice)
		assert.Greater(t, *op.TakeProfit, op.OpenPrice)
	} else {
		assert.Greater(t, *op.StopLoss, op.OpenPrice)
		assert.Less(t, *op.TakeProfit, op.OpenPrice)
	}

	fx.impl.settings.OpenProbability = 0
	fx.impl.settings.CloseProbability = 1
	fx.clock.advance(time.Hour)

	report, err = fx.service.SyncTrades(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TradesClosed)
	assert.Equal(t, 0, report.OpenOperations)

	closed, err := fx.service.ListOperations(ctx, entity.TradeStatusClosed)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	require.NotNil(t, closed[0].Profit)
	require.NotNil(t, closed[0].CloseTime)
	assert.Equal(t, fx.clock.now(), *closed[0].CloseTime)
	assert.InDelta(t, closed[0].ComputeProfit(*closed[0].ClosePrice), *closed[0].Profit, 0)
}

func TestCopytradingService_SyncRetainsNewestOperations(t *testing.T) {
	fx := createTestCopytradingService(t)
	fx.impl.settings.RetainOperations = 3
	ctx := context.Background()

	base := fx.clock.now()
	seeded := make([]*entity.TradeOperation, 0, 5)
	for i := range 5 {
		seeded = append(seeded, &entity.TradeOperation{
			ID:        fmt.Sprintf("op-%d", i),
			Symbol:    "EURUSD",
			Type:      entity.TradeTypeBuy,
			OpenTime:  base.Add(time.Duration(i) * time.Minute),
			OpenPrice: 1.08,
			Volume:    0.1,
			Status:    entity.TradeStatusOpen,
		})
	}
	require.NoError(t, fx.repo.SaveOperations(ctx, seeded))

	_, err := fx.service.SyncTrades(ctx)
	require.NoError(t, err)

	ops, err := fx.service.ListOperations(ctx, "")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, []string{"op-4", "op-3", "op-2"}, []string{ops[0].ID, ops[1].ID, ops[2].ID})

	stored, err := fx.repo.LoadOperations(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCopytradingService_SyncHonoursCancellation(t *testing.T) {
	fx := createTestCopytradingService(t)
	registerTestAccount(t, fx.service, "u1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.SyncTrades(ctx)
	require.ErrorIs(t, err, context.Canceled)

	account, err := fx.service.GetAccount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusPending, account.Status)
}

func TestCopytradingService_UpdateAccount(t *testing.T) {
	fx := createTestCopytradingService(t)
	ctx := context.Background()
	registerTestAccount(t, fx.service, "u1")

	account, err := fx.service.UpdateAccountStatus(ctx, "u1", entity.AccountStatusDisabled)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusDisabled, account.Status)

	_, err = fx.service.UpdateAccountStatus(ctx, "u1", entity.AccountStatus("paused"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateAccountStatus(ctx, "ghost", entity.AccountStatusActive)
	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	account, err = fx.service.UpdateRiskSettings(ctx, "u1", &entity.RiskSettings{MaxVolume: 0.5, MaxDrawdown: 10, CopyRatio: 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, account.RiskSettings.MaxVolume, 0)
	assert.False(t, account.RiskSettings.UseStopLoss)

	_, err = fx.service.UpdateRiskSettings(ctx, "u1", &entity.RiskSettings{MaxVolume: 1, MaxDrawdown: 150, CopyRatio: 1})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.ListOperations(ctx, entity.TradeStatus("archived"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	stored, err := fx.repo.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, entity.AccountStatusDisabled, stored[0].Status)
}

func TestTradableSymbols(t *testing.T) {
	tests := []struct {
		name       string
		configured []string
		want       []string
	}{
		{name: "known symbols kept in order", configured: []string{"XAUUSD", "US30", "NAS100"}, want: []string{"XAUUSD", "US30", "NAS100"}},
		{name: "unknown symbols dropped", configured: []string{"EURUSD", "DOGEUSD"}, want: []string{"EURUSD"}},
		{name: "nothing tradable falls back to defaults", configured: []string{"DOGEUSD"}, want: defaultTradeSymbols},
		{name: "empty falls back to defaults", configured: nil, want: defaultTradeSymbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tradableSymbols(tt.configured, newTestLogger())
			assert.Equal(t, tt.want, got)
			for _, symbol := range got {
				assert.Contains(t, referencePrices, symbol)
			}
		})
	}
}
