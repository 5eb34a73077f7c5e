package persistence

import (
	"context"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithKeyPrefix_NamespacesKeys(t *testing.T) {
	inner := memory.NewKeyValueStore()
	store := WithKeyPrefix(inner, "mtm")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "env:A", []byte("1")))

	raw, err := inner.Get(ctx, "mtm:env:A")
	require.NoError(t, err)
	assert.Equal(t, "1", string(raw))

	keys, err := store.Keys(ctx, "env:")
	require.NoError(t, err)
	assert.Equal(t, []string{"env:A"}, keys)

	require.NoError(t, store.Delete(ctx, "env:A"))
	_, err = inner.Get(ctx, "mtm:env:A")
	assert.Error(t, err)
}
