package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shophub/shopkit/pkg/storage"
)

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		_, err := store.Get(ctx, "token")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
		assert.True(t, storage.IsNotFound(err))
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		require.NoError(t, store.Set(ctx, "token", "abc123"))

		value, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "abc123", value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		require.NoError(t, store.Set(ctx, "token", "first"))
		require.NoError(t, store.Set(ctx, "token", "second"))

		value, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "second", value)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		require.NoError(t, store.Set(ctx, "cart", "[]"))
		require.NoError(t, store.Remove(ctx, "cart"))

		_, err := store.Get(ctx, "cart")
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("remove absent key is a no-op", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		assert.NoError(t, store.Remove(ctx, "missing"))
	})

	t.Run("keys snapshot", func(t *testing.T) {
		t.Parallel()
		store := storage.NewMemory()

		require.NoError(t, store.Set(ctx, "token", "t"))
		require.NoError(t, store.Set(ctx, "user", "{}"))

		assert.ElementsMatch(t, []string{"token", "user"}, store.Keys())
	})
}
