package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/document"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// siteConfigServiceFixtures holds all test dependencies for site config service tests.
type siteConfigServiceFixtures struct {
	service usecase.SiteConfigUsecase
	store   repository.KeyValueStore
}

func createTestSiteConfigService(t *testing.T) siteConfigServiceFixtures {
	store := memory.NewKeyValueStore()

	return siteConfigServiceFixtures{
		service: newSiteConfigServiceOn(t, store),
		store:   store,
	}
}

func newSiteConfigServiceOn(t *testing.T, store repository.KeyValueStore) usecase.SiteConfigUsecase {
	return NewSiteConfigService(SiteConfigServiceParams{
		SiteConfigRepo: document.NewSiteConfigRepository(store),
		Metrics:        newLenientMetrics(t),
		Config:         newServiceTestConfig(),
		Logger:         newTestLogger(),
	})
}

func TestSiteConfigService_GetConfig_DefaultsWhenMissing(t *testing.T) {
	fx := createTestSiteConfigService(t)

	cfg, err := fx.service.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSiteConfig(), cfg)
}

func TestSiteConfigService_UpdateConfig_NestedMerge(t *testing.T) {
	fx := createTestSiteConfigService(t)
	ctx := context.Background()
	defaults := entity.DefaultSiteConfig()

	updated, err := fx.service.UpdateConfig(ctx, map[string]any{
		"name":             "MTM Academy",
		"colors":           map[string]any{"primary": "#FF0000"},
		"affiliateProgram": map[string]any{"commissionRate": 15},
		"affiliateLinks":   map[string]any{"telegram": "https://t.me/mtm"},
		"features":         []any{"scanner"},
		"version":          99,
	})
	require.NoError(t, err)

	assert.Equal(t, "MTM Academy", updated.Name)
	assert.Equal(t, "#FF0000", updated.Colors.Primary)
	assert.Equal(t, defaults.Colors.Secondary, updated.Colors.Secondary, "sibling keys survive a nested merge")
	assert.Equal(t, defaults.Colors.Background, updated.Colors.Background)
	assert.InDelta(t, 15.0, updated.AffiliateProgram.CommissionRate, 0)
	assert.True(t, updated.AffiliateProgram.Enabled)
	assert.Equal(t, defaults.AffiliateProgram.CookieDays, updated.AffiliateProgram.CookieDays)
	assert.Equal(t, "https://t.me/mtm", updated.AffiliateLinks["telegram"])
	assert.Equal(t, defaults.AffiliateLinks["broker"], updated.AffiliateLinks["broker"])
	assert.Equal(t, []string{"scanner"}, updated.Features, "arrays are replaced wholesale")
	assert.Equal(t, entity.CurrentSiteConfigVersion, updated.Version)

	again, err := fx.service.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, again)
}

func TestSiteConfigService_UpdateConfig_NonNestedObjectIsReplaced(t *testing.T) {
	fx := createTestSiteConfigService(t)

	updated, err := fx.service.UpdateConfig(context.Background(), map[string]any{
		"copytrading": map[string]any{
			"defaultBroker":       "IC Markets",
			"defaultRiskSettings": map[string]any{"maxVolume": 2, "maxDrawdown": 10, "copyRatio": 0.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "IC Markets", updated.Copytrading.DefaultBroker)
	assert.Empty(t, updated.Copytrading.DefaultServer, "copytrading is not a merged key")
	assert.InDelta(t, 0.5, updated.Copytrading.DefaultRiskSettings.CopyRatio, 0)
}

func TestSiteConfigService_UpdateConfig_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		partial map[string]any
	}{
		{name: "empty", partial: map[string]any{}},
		{name: "unknown key", partial: map[string]any{"theme": "dark"}},
		{name: "wrong type", partial: map[string]any{"name": 42}},
		{name: "nested key not an object", partial: map[string]any{"colors": "red"}},
		{name: "commission rate out of range", partial: map[string]any{"affiliateProgram": map[string]any{"commissionRate": 150}}},
		{name: "invalid default risk", partial: map[string]any{"copytrading": map[string]any{"defaultRiskSettings": map[string]any{"maxVolume": 0, "copyRatio": 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSiteConfigService(t)
			ctx := context.Background()

			_, err := fx.service.UpdateConfig(ctx, tt.partial)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			cfg, err := fx.service.GetConfig(ctx)
			require.NoError(t, err)
			assert.Equal(t, entity.DefaultSiteConfig(), cfg, "a rejected update changes nothing")
		})
	}
}

func TestSiteConfigService_ResetConfig(t *testing.T) {
	fx := createTestSiteConfigService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateConfig(ctx, map[string]any{"name": "Changed", "colors": map[string]any{"primary": "#123456"}})
	require.NoError(t, err)

	reset, err := fx.service.ResetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSiteConfig(), reset)

	restarted := newSiteConfigServiceOn(t, fx.store)
	cfg, err := restarted.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSiteConfig(), cfg)
}

func TestSiteConfigService_MigratesUnversionedDocument(t *testing.T) {
	fx := createTestSiteConfigService(t)
	ctx := context.Background()

	legacy := `{"name":"Legacy MTM","colors":{"primary":"#111111"},"customScript":"<script></script>"}`
	require.NoError(t, fx.store.Set(ctx, "site-config", []byte(legacy)))

	cfg, err := fx.service.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.CurrentSiteConfigVersion, cfg.Version)
	assert.Equal(t, "Legacy MTM", cfg.Name)
	assert.Equal(t, "#111111", cfg.Colors.Primary)
	assert.Equal(t, entity.DefaultSiteConfig().AffiliateProgram, cfg.AffiliateProgram)

	raw, err := fx.store.Get(ctx, "site-config")
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.EqualValues(t, entity.CurrentSiteConfigVersion, stored["version"])
}

func TestSiteConfigService_CorruptDocumentFallsBackToDefaults(t *testing.T) {
	fx := createTestSiteConfigService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.Set(ctx, "site-config", []byte("null")))

	cfg, err := fx.service.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSiteConfig(), cfg)
}

func TestSiteConfigService_EnvOverrides(t *testing.T) {
	fx := createTestSiteConfigService(t)
	ctx := context.Background()
	t.Setenv("TELEGRAM_CHAT_ID", "from-process")

	require.NoError(t, fx.service.SetEnvOverride(ctx, "TELEGRAM_BOT_TOKEN", "123:abc"))
	require.ErrorIs(t, fx.service.SetEnvOverride(ctx, "DATABASE_URL", "x"), domainerrors.ErrEnvKeyNotAllowed)

	value, ok := fx.service.LookupEnv(ctx, "TELEGRAM_BOT_TOKEN")
	assert.True(t, ok)
	assert.Equal(t, "123:abc", value)

	value, ok = fx.service.LookupEnv(ctx, "TELEGRAM_CHAT_ID")
	assert.True(t, ok)
	assert.Equal(t, "from-process", value)

	require.NoError(t, fx.service.SetEnvOverride(ctx, "TELEGRAM_CHAT_ID", "from-store"))
	value, _ = fx.service.LookupEnv(ctx, "TELEGRAM_CHAT_ID")
	assert.Equal(t, "from-store", value)

	overrides, err := fx.service.ListEnvOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, []usecase.EnvOverride{
		{Name: "TELEGRAM_BOT_TOKEN", Value: "123:abc"},
		{Name: "TELEGRAM_CHAT_ID", Value: "from-store"},
	}, overrides)

	restarted := newSiteConfigServiceOn(t, fx.store)
	persisted, err := restarted.ListEnvOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, overrides, persisted)

	require.NoError(t, restarted.DeleteEnvOverride(ctx, "TELEGRAM_CHAT_ID"))
	require.ErrorIs(t, restarted.DeleteEnvOverride(ctx, "TELEGRAM_CHAT_ID"), domainerrors.ErrEnvOverrideNotFound)
	value, _ = restarted.LookupEnv(ctx, "TELEGRAM_CHAT_ID")
	assert.Equal(t, "from-process", value)
}

func TestSiteConfigService_GetConfig_ScannerURLFromEnvironment(t *testing.T) {
	t.Run("process environment", func(t *testing.T) {
		fx := createTestSiteConfigService(t)
		t.Setenv(constants.EnvTradingViewScannerURL, "https://www.tradingview.com/script/from-env")

		cfg, err := fx.service.GetConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://www.tradingview.com/script/from-env", cfg.TradingViewSettings.ScannerURL)
	})

	t.Run("stored override wins and the document is untouched", func(t *testing.T) {
		store := memory.NewKeyValueStore()
		cfg := newServiceTestConfig()
		cfg.SiteSettings.EnvKeys = append(cfg.SiteSettings.EnvKeys, constants.EnvTradingViewScannerURL)
		svc := NewSiteConfigService(SiteConfigServiceParams{
			SiteConfigRepo: document.NewSiteConfigRepository(store),
			Metrics:        newLenientMetrics(t),
			Config:         cfg,
			Logger:         newTestLogger(),
		})
		ctx := context.Background()
		t.Setenv(constants.EnvTradingViewScannerURL, "https://www.tradingview.com/script/from-env")

		require.NoError(t, svc.SetEnvOverride(ctx, constants.EnvTradingViewScannerURL, "https://www.tradingview.com/script/override"))
		_, err := svc.UpdateConfig(ctx, map[string]any{"name": "MTM Academy"})
		require.NoError(t, err)

		got, err := svc.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://www.tradingview.com/script/override", got.TradingViewSettings.ScannerURL)

		stored, err := document.NewSiteConfigRepository(store).LoadSiteConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultSiteConfig().TradingViewSettings.ScannerURL, stored.TradingViewSettings.ScannerURL)
	})
}
