package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelbellery/storefront-backend/internal/storage"
)

// setupRedisStore creates a RedisStore backed by a miniredis instance
func setupRedisStore(t *testing.T, ttl time.Duration) (*storage.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.NewMiniRedis()
	err := mr.Start()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return storage.NewRedisStore(client, ttl), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key reports not present without error", func(t *testing.T) {
		store, _ := setupRedisStore(t, time.Hour)

		value, ok, err := store.Get(ctx, "cart:session:absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", value)
	})

	t.Run("set then get round-trips the value", func(t *testing.T) {
		store, _ := setupRedisStore(t, time.Hour)

		require.NoError(t, store.Set(ctx, "cart:session:abc", `[{"product_id":1,"quantity":2}]`))

		value, ok, err := store.Get(ctx, "cart:session:abc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `[{"product_id":1,"quantity":2}]`, value)
	})

	t.Run("values carry the session TTL", func(t *testing.T) {
		store, mr := setupRedisStore(t, 24*time.Hour)

		require.NoError(t, store.Set(ctx, "cart:session:abc", "[]"))
		assert.Equal(t, 24*time.Hour, mr.TTL("cart:session:abc"))
	})

	t.Run("delete removes the key, absent delete is fine", func(t *testing.T) {
		store, _ := setupRedisStore(t, time.Hour)

		require.NoError(t, store.Set(ctx, "pincode:session:abc", "560001"))
		require.NoError(t, store.Delete(ctx, "pincode:session:abc"))

		_, ok, err := store.Get(ctx, "pincode:session:abc")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Delete(ctx, "pincode:session:abc"))
	})

	t.Run("ping succeeds against a live server", func(t *testing.T) {
		store, _ := setupRedisStore(t, time.Hour)
		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("get surfaces transport errors", func(t *testing.T) {
		store, mr := setupRedisStore(t, time.Hour)
		mr.Close()

		_, _, err := store.Get(ctx, "cart:session:abc")
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("behaves like the redis store for the core contract", func(t *testing.T) {
		store := storage.NewMemoryStore()

		_, ok, err := store.Get(ctx, "cart:session:absent")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.Set(ctx, "cart:session:abc", "[]"))
		value, ok, err := store.Get(ctx, "cart:session:abc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "[]", value)

		require.NoError(t, store.Delete(ctx, "cart:session:abc"))
		_, ok, err = store.Get(ctx, "cart:session:abc")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Ping(ctx))
	})

	t.Run("set overwrites whole values", func(t *testing.T) {
		store := storage.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "pincode:session:abc", "110011"))
		require.NoError(t, store.Set(ctx, "pincode:session:abc", "560001"))

		value, ok, err := store.Get(ctx, "pincode:session:abc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "560001", value)
	})
}
