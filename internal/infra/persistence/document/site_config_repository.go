package document

import (
	"context"
	"strings"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"

	"github.com/pkg/errors"
)

type siteConfigRepository struct {
	store repository.KeyValueStore
}

// NewSiteConfigRepository stores the config under site-config and overrides under env:<NAME>.
func NewSiteConfigRepository(store repository.KeyValueStore) repository.SiteConfigRepository {
	return &siteConfigRepository{store: store}
}

func (r *siteConfigRepository) LoadSiteConfig(ctx context.Context) (*entity.SiteConfig, error) {
	cfg, err := load[*entity.SiteConfig](ctx, r.store, constants.KeySiteConfig)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		// "null" is not a config
		return nil, errors.Wrap(repository.ErrCorruptDocument, constants.KeySiteConfig)
	}

	return cfg, nil
}

func (r *siteConfigRepository) SaveSiteConfig(ctx context.Context, cfg *entity.SiteConfig) error {
	return save(ctx, r.store, constants.KeySiteConfig, cfg)
}

func (r *siteConfigRepository) SetEnvOverride(ctx context.Context, name, value string) error {
	return save(ctx, r.store, envKey(name), value)
}

func (r *siteConfigRepository) DeleteEnvOverride(ctx context.Context, name string) error {
	return r.store.Delete(ctx, envKey(name))
}

func (r *siteConfigRepository) ListEnvOverrides(ctx context.Context) (map[string]string, error) {
	keys, err := r.store.Keys(ctx, constants.KeyEnvOverridePrefix)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := load[string](ctx, r.store, key)
		if errors.Is(err, repository.ErrKeyNotFound) {
			// deleted between listing and reading
			continue
		}
		if err != nil {
			return nil, err
		}
		overrides[strings.TrimPrefix(key, constants.KeyEnvOverridePrefix)] = value
	}

	return overrides, nil
}

func envKey(name string) string {
	return constants.KeyEnvOverridePrefix + name
}
