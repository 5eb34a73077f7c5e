// Package memory implements the key/value boundary in process memory.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
)

// kvStore keeps documents in a map. Contents are lost on restart.
type kvStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewKeyValueStore creates an empty in-memory store.
func NewKeyValueStore() repository.KeyValueStore {
	return &kvStore{
		entries: make(map[string][]byte),
	}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = slices.Clone(value)

	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

func (s *kvStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for _, key := range slices.Sorted(maps.Keys(s.entries)) {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (s *kvStore) Close() error {
	return nil
}
