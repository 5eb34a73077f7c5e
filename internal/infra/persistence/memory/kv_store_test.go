package memory

import (
	"context"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "cart:a")
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "cart:a", []byte(`[]`)))

	value, err := store.Get(ctx, "cart:a")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, store.Delete(ctx, "cart:a"))
	require.NoError(t, store.Delete(ctx, "cart:a"))

	_, err = store.Get(ctx, "cart:a")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_GetReturnsCopy(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'z'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestKVStore_KeysByPrefix(t *testing.T) {
	store := NewKeyValueStore()
	ctx := context.Background()
	for _, key := range []string{"env:B", "env:A", "affiliates"} {
		require.NoError(t, store.Set(ctx, key, []byte("1")))
	}

	keys, err := store.Keys(ctx, "env:")
	require.NoError(t, err)
	assert.Equal(t, []string{"env:A", "env:B"}, keys)
}
