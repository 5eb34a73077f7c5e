package repository

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// SiteConfigRepository persists the site configuration and per-variable environment overrides.
type SiteConfigRepository interface {
	// LoadSiteConfig returns the stored config as written, without migration.
	// It returns ErrKeyNotFound when nothing is stored.
	LoadSiteConfig(ctx context.Context) (*entity.SiteConfig, error)

	// SaveSiteConfig replaces the stored config.
	SaveSiteConfig(ctx context.Context, cfg *entity.SiteConfig) error

	// SetEnvOverride stores value for name.
	SetEnvOverride(ctx context.Context, name, value string) error

	// DeleteEnvOverride removes the override for name.
	DeleteEnvOverride(ctx context.Context, name string) error

	// ListEnvOverrides returns every stored override keyed by variable name.
	ListEnvOverrides(ctx context.Context) (map[string]string, error)
}
