// Package blob implements the key/value boundary on a gocloud bucket, one object per key.
package blob

import (
	"context"
	"io"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentType = "application/json"

type kvStore struct {
	bucket *blob.Bucket
}

// Open opens the bucket at url and wraps it as a key/value store.
func Open(ctx context.Context, url string) (repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return NewKeyValueStore(bucket), nil
}

// NewKeyValueStore wraps an already opened bucket.
func NewKeyValueStore(bucket *blob.Bucket) repository.KeyValueStore {
	return &kvStore{bucket: bucket}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return data, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentType})

	return errors.Wrapf(err, "failed to write object %s", key)
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete object %s", key)
}

func (s *kvStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list objects")
		}
		if obj.IsDir {
			continue
		}
		keys = append(keys, obj.Key)
	}

	return keys, nil
}

func (s *kvStore) Close() error {
	return s.bucket.Close()
}
