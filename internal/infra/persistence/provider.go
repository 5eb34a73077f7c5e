// Package persistence selects the key/value driver configured by storage.driver.
package persistence

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/lifecycle"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/blob"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/postgres"
	redisstore "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KeyValueStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueStore creates the KeyValueStore selected by configuration
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	var store repository.KeyValueStore

	switch cfg.Driver {
	case constants.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		store = memory.NewKeyValueStore()

	case constants.StorageDriverRedis:
		logger.Info("Using Redis storage", slog.String("addr", cfg.Redis.Addr))

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
		})

		store = redisstore.NewKeyValueStore(client)

	case constants.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres section is required for postgres storage")
		}
		logger.Info("Using PostgreSQL storage")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return postgres.Migrate(ctx, db)
			},
		})

		store = postgres.NewKeyValueStore(db)

	case constants.StorageDriverBlob:
		if cfg.Blob.URL == "" {
			return nil, errors.New("blob url is required for blob storage")
		}
		logger.Info("Using blob storage", slog.String("url", cfg.Blob.URL))

		var err error
		store, err = blob.Open(params.Ctx, cfg.Blob.URL)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}

	if prefix := strings.TrimSpace(cfg.KeyPrefix); prefix != "" {
		store = WithKeyPrefix(store, prefix)
	}

	// Register lifecycle hook to close the store on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing KeyValueStore")

			return store.Close()
		},
	})

	return store, nil
}

// prefixedStore namespaces every key with "<prefix>:".
type prefixedStore struct {
	repository.KeyValueStore
	prefix string
}

// WithKeyPrefix wraps store so that several deployments can share one backend.
func WithKeyPrefix(store repository.KeyValueStore, prefix string) repository.KeyValueStore {
	return &prefixedStore{
		KeyValueStore: store,
		prefix:        prefix + ":",
	}
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.KeyValueStore.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.KeyValueStore.Set(ctx, s.prefix+key, value)
}

func (s *prefixedStore) Delete(ctx context.Context, key string) error {
	return s.KeyValueStore.Delete(ctx, s.prefix+key)
}

func (s *prefixedStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.KeyValueStore.Keys(ctx, s.prefix+prefix)
	if err != nil {
		return nil, err
	}
	for i, key := range keys {
		keys[i] = strings.TrimPrefix(key, s.prefix)
	}

	return keys, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueStore),
)
