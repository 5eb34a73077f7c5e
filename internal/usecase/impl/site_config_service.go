package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const siteConfigVersionKey = "version"

// siteConfigService implements the SiteConfigUsecase interface.
type siteConfigService struct {
	mu        sync.Mutex
	loaded    bool
	current   *entity.SiteConfig
	overrides map[string]string
	envKeys   map[string]struct{}

	siteConfigRepo repository.SiteConfigRepository
	metrics        service.Metrics
	lookupProcess  func(string) (string, bool)
	logger         *slog.Logger
}

// SiteConfigServiceParams holds dependencies for SiteConfigService, injected by Fx.
type SiteConfigServiceParams struct {
	fx.In

	SiteConfigRepo repository.SiteConfigRepository
	Metrics        service.Metrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSiteConfigService is the constructor for siteConfigService.
func NewSiteConfigService(params SiteConfigServiceParams) usecase.SiteConfigUsecase {
	envKeys := map[string]struct{}{}
	if params.Config != nil && params.Config.SiteSettings != nil {
		for _, key := range params.Config.SiteSettings.EnvKeys {
			envKeys[strings.TrimSpace(key)] = struct{}{}
		}
	}

	return &siteConfigService{
		envKeys:        envKeys,
		siteConfigRepo: params.SiteConfigRepo,
		metrics:        params.Metrics,
		lookupProcess:  os.LookupEnv,
		logger:         params.Logger,
	}
}

func (srv *siteConfigService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *siteConfigService) GetConfig(ctx context.Context) (*entity.SiteConfig, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	cfg := srv.current.Clone()
	if url, ok := srv.lookupEnvLocked(constants.EnvTradingViewScannerURL); ok && url != "" {
		// the environment wins over the stored link; the stored document is untouched
		cfg.TradingViewSettings.ScannerURL = url
	}

	return cfg, nil
}

func (srv *siteConfigService) UpdateConfig(ctx context.Context, partial map[string]any) (*entity.SiteConfig, error) {
	if len(partial) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty update")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	next, err := mergeSiteConfig(srv.current, partial)
	if err != nil {
		return nil, err
	}
	srv.current = next
	srv.persistConfigLocked(ctx)

	srv.log(ctx).Info("Site config updated", slog.Any("keys", slices.Sorted(maps.Keys(partial))))

	return srv.current.Clone(), nil
}

func (srv *siteConfigService) ResetConfig(ctx context.Context) (*entity.SiteConfig, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.loaded = true
	srv.current = entity.DefaultSiteConfig()
	srv.persistConfigLocked(ctx)

	srv.log(ctx).Info("Site config reset to defaults")

	return srv.current.Clone(), nil
}

func (srv *siteConfigService) SetEnvOverride(ctx context.Context, name, value string) error {
	name = strings.TrimSpace(name)
	if err := srv.checkEnvKey(name); err != nil {
		return err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	if err := srv.siteConfigRepo.SetEnvOverride(ctx, name, value); err != nil {
		srv.metrics.StoreWriteFailed(constants.KeyEnvOverridePrefix + name)

		return errors.Wrap(err, "failed to store environment override")
	}
	srv.overrides[name] = value

	srv.log(ctx).Info("Environment override set", slog.String("name", name))

	return nil
}

func (srv *siteConfigService) DeleteEnvOverride(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := srv.checkEnvKey(name); err != nil {
		return err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	if _, ok := srv.overrides[name]; !ok {
		return domainerrors.ErrEnvOverrideNotFound.WithDetails(name)
	}
	if err := srv.siteConfigRepo.DeleteEnvOverride(ctx, name); err != nil {
		srv.metrics.StoreWriteFailed(constants.KeyEnvOverridePrefix + name)

		return errors.Wrap(err, "failed to delete environment override")
	}
	delete(srv.overrides, name)

	srv.log(ctx).Info("Environment override deleted", slog.String("name", name))

	return nil
}

func (srv *siteConfigService) ListEnvOverrides(ctx context.Context) ([]usecase.EnvOverride, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	list := make([]usecase.EnvOverride, 0, len(srv.overrides))
	for _, name := range slices.Sorted(maps.Keys(srv.overrides)) {
		list = append(list, usecase.EnvOverride{Name: name, Value: srv.overrides[name]})
	}

	return list, nil
}

func (srv *siteConfigService) LookupEnv(ctx context.Context, name string) (string, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoadedLocked(ctx)

	return srv.lookupEnvLocked(name)
}

// lookupEnvLocked prefers a stored override over the process environment. Callers must hold srv.mu.
func (srv *siteConfigService) lookupEnvLocked(name string) (string, bool) {
	if value, ok := srv.overrides[name]; ok {
		return value, true
	}

	return srv.lookupProcess(name)
}

func (srv *siteConfigService) checkEnvKey(name string) error {
	if name == "" {
		return domainerrors.NewValidationError(domainerrors.FieldErrors{"name": "required"})
	}
	if _, ok := srv.envKeys[name]; !ok {
		return domainerrors.ErrEnvKeyNotAllowed.WithDetails(name)
	}

	return nil
}

// ensureLoadedLocked reads the stored config and overrides once. A missing or corrupt config
// yields the defaults; an older schema is migrated and written back.
func (srv *siteConfigService) ensureLoadedLocked(ctx context.Context) {
	if srv.loaded {
		return
	}
	srv.loaded = true

	cfg, err := srv.siteConfigRepo.LoadSiteConfig(ctx)
	migrated := false
	switch {
	case errors.Is(err, repository.ErrKeyNotFound):
		cfg = entity.DefaultSiteConfig()
	case err != nil:
		srv.log(ctx).Warn("Failed to load site config, using defaults", slog.Any("error", err))
		cfg = entity.DefaultSiteConfig()
	case cfg.Version < entity.CurrentSiteConfigVersion:
		srv.log(ctx).Info("Migrating site config",
			slog.Int("from_version", cfg.Version),
			slog.Int("to_version", entity.CurrentSiteConfigVersion),
		)
		migrateSiteConfig(cfg)
		migrated = true
	}
	srv.current = cfg
	if migrated {
		srv.persistConfigLocked(ctx)
	}

	overrides, err := srv.siteConfigRepo.ListEnvOverrides(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load environment overrides", slog.Any("error", err))
		overrides = map[string]string{}
	}
	srv.overrides = overrides
}

func (srv *siteConfigService) persistConfigLocked(ctx context.Context) {
	if err := srv.siteConfigRepo.SaveSiteConfig(ctx, srv.current); err != nil {
		srv.log(ctx).Error("Failed to persist site config", slog.Any("error", err))
		srv.metrics.StoreWriteFailed(constants.KeySiteConfig)
	}
}

// mergeSiteConfig applies partial to current: nested keys merge one level deep, every other key
// is replaced. The version is never taken from partial.
func mergeSiteConfig(current *entity.SiteConfig, partial map[string]any) (*entity.SiteConfig, error) {
	base, err := toJSONMap(current)
	if err != nil {
		return nil, err
	}

	fields := domainerrors.FieldErrors{}
	for key, value := range partial {
		if key == siteConfigVersionKey {
			continue
		}

		if !slices.Contains(entity.SiteConfigNestedKeys, key) {
			base[key] = value

			continue
		}

		patch, ok := value.(map[string]any)
		if !ok {
			fields[key] = "must be an object"

			continue
		}
		nested, ok := base[key].(map[string]any)
		if !ok {
			nested = map[string]any{}
		}
		maps.Copy(nested, patch)
		base[key] = nested
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	data, err := json.Marshal(base)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	next := &entity.SiteConfig{}
	if err := decoder.Decode(next); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	next.Version = entity.CurrentSiteConfigVersion

	if err := validateSiteConfig(next); err != nil {
		return nil, err
	}

	return next, nil
}

func validateSiteConfig(cfg *entity.SiteConfig) error {
	if rate := cfg.AffiliateProgram.CommissionRate; rate < 0 || rate > 100 {
		return domainerrors.NewValidationError(domainerrors.FieldErrors{"affiliateProgram.commissionRate": "must be between 0 and 100"})
	}

	return validateStruct(&cfg.Copytrading.DefaultRiskSettings)
}

// migrateSiteConfig upgrades a version 0 document: sections it never carried take their defaults.
func migrateSiteConfig(cfg *entity.SiteConfig) {
	defaults := entity.DefaultSiteConfig()

	if cfg.Colors == (entity.SiteColors{}) {
		cfg.Colors = defaults.Colors
	}
	if cfg.Display == (entity.DisplaySettings{}) {
		cfg.Display = defaults.Display
	}
	if cfg.Features == nil {
		cfg.Features = defaults.Features
	}
	if cfg.SocialLinks == nil {
		cfg.SocialLinks = defaults.SocialLinks
	}
	if cfg.AffiliateLinks == nil {
		cfg.AffiliateLinks = defaults.AffiliateLinks
	}
	if cfg.AffiliateProgram == (entity.AffiliateProgram{}) {
		cfg.AffiliateProgram = defaults.AffiliateProgram
	}
	if cfg.TradingViewSettings == (entity.TradingViewSettings{}) {
		cfg.TradingViewSettings = defaults.TradingViewSettings
	}
	if cfg.Copytrading == (entity.CopytradingDefaults{}) {
		cfg.Copytrading = defaults.Copytrading
	}
	cfg.Version = entity.CurrentSiteConfigVersion
}

func toJSONMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode site config")
	}

	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode site config")
	}

	return out, nil
}
