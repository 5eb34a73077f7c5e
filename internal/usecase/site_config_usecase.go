package usecase

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/entity"
)

// EnvOverride is a stored environment variable override
type EnvOverride struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SiteConfigUsecase manages the global site configuration and environment overrides
type SiteConfigUsecase interface {
	// GetConfig returns a copy of the current config
	GetConfig(ctx context.Context) (*entity.SiteConfig, error)

	// UpdateConfig applies a partial update: top-level keys overwrite, known nested objects merge key by key
	UpdateConfig(ctx context.Context, partial map[string]any) (*entity.SiteConfig, error)

	// ResetConfig restores the built-in defaults
	ResetConfig(ctx context.Context) (*entity.SiteConfig, error)

	SetEnvOverride(ctx context.Context, name, value string) error
	DeleteEnvOverride(ctx context.Context, name string) error
	ListEnvOverrides(ctx context.Context) ([]EnvOverride, error)

	// LookupEnv returns the stored override for name, else the process environment
	LookupEnv(ctx context.Context, name string) (string, bool)
}
