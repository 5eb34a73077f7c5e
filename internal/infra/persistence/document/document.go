// Package document implements the typed repositories as JSON documents on a KeyValueStore.
package document

import (
	"context"
	"encoding/json"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"

	"github.com/pkg/errors"
)

// load decodes the document stored under key into a T. A missing key yields the zero T
// and repository.ErrKeyNotFound; undecodable data yields repository.ErrCorruptDocument.
func load[T any](ctx context.Context, store repository.KeyValueStore, key string) (T, error) {
	var doc T

	data, err := store.Get(ctx, key)
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		var zero T

		return zero, errors.Wrapf(repository.ErrCorruptDocument, "%s: %v", key, err)
	}

	return doc, nil
}

// loadList is load for collections: a missing key is an empty list.
func loadList[T any](ctx context.Context, store repository.KeyValueStore, key string) ([]T, error) {
	list, err := load[[]T](ctx, store, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}

	return list, nil
}

func save(ctx context.Context, store repository.KeyValueStore, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return store.Set(ctx, key, data)
}
