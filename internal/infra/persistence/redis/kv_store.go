// Package redis implements the key/value boundary on Redis strings.
package redis

import (
	"context"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

// kvStore stores each document as a plain Redis string without expiry.
type kvStore struct {
	client *redis.Client
}

// NewKeyValueStore wraps an existing client.
func NewKeyValueStore(client *redis.Client) repository.KeyValueStore {
	return &kvStore{client: client}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s failed", key)
	}

	return data, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s failed", key)
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s failed", key)
	}

	return nil
}

func (s *kvStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "redis scan failed")
	}

	return keys, nil
}

func (s *kvStore) Close() error {
	return s.client.Close()
}
