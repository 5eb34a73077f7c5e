package blob

import (
	"context"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestKVStore_RoundTrip(t *testing.T) {
	store := NewKeyValueStore(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	_, err := store.Get(ctx, "commissionHistory")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "commissionHistory", []byte(`[]`)))
	data, err := store.Get(ctx, "commissionHistory")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	require.NoError(t, store.Delete(ctx, "commissionHistory"))
	require.NoError(t, store.Delete(ctx, "commissionHistory"))
}

func TestKVStore_KeysByPrefix(t *testing.T) {
	store := NewKeyValueStore(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "env:A", []byte(`"1"`)))
	require.NoError(t, store.Set(ctx, "env:B", []byte(`"2"`)))
	require.NoError(t, store.Set(ctx, "site-config", []byte(`{}`)))

	keys, err := store.Keys(ctx, "env:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"env:A", "env:B"}, keys)
}

func TestOpen_MemURL(t *testing.T) {
	store, err := Open(context.Background(), "mem://")
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
