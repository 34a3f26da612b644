package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/sellerhub/opsdash-be/internal/adapters/redis_adapter"
	"github.com/sellerhub/opsdash-be/internal/core/ports"
	"github.com/sellerhub/opsdash-be/test/helpers"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client, ports.CacheRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client, redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	_, _, cache := newTestCache(t)

	type payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	require.NoError(t, cache.Set(ctx, "test:struct", payload{ID: "123", Name: "Chair"}))

	var result payload
	require.NoError(t, cache.Get(ctx, "test:struct", &result))
	assert.Equal(t, "123", result.ID)
	assert.Equal(t, "Chair", result.Name)
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	mr, _, cache := newTestCache(t)

	require.NoError(t, cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond))

	var result string
	require.NoError(t, cache.Get(ctx, "ttl:test", &result))
	assert.Equal(t, "value", result)

	mr.FastForward(200 * time.Millisecond)

	err := cache.Get(ctx, "ttl:test", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	_, _, cache := newTestCache(t)

	keysToDelete := []string{"catalog:s1:page1", "catalog:s1:page2"}
	keysToKeep := []string{"catalog:s2:page1", "look:abc"}

	for _, key := range append(keysToDelete, keysToKeep...) {
		require.NoError(t, cache.Set(ctx, key, "value"))
	}

	require.NoError(t, cache.DeletePattern(ctx, "catalog:s1:*"))

	for _, key := range keysToDelete {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err, "key should be invalidated: %s", key)
	}
	for _, key := range keysToKeep {
		var result string
		require.NoError(t, cache.Get(ctx, key, &result))
	}
}

func TestCache_GetOrSet(t *testing.T) {
	ctx := context.Background()
	_, _, cache := newTestCache(t)

	fetchCount := 0
	fetchFunc := func() (interface{}, error) {
		fetchCount++
		return "fetched value", nil
	}

	var result1 string
	require.NoError(t, cache.GetOrSet(ctx, "getorset:test", &result1, fetchFunc, time.Minute))
	assert.Equal(t, "fetched value", result1)
	assert.Equal(t, 1, fetchCount)

	var result2 string
	require.NoError(t, cache.GetOrSet(ctx, "getorset:test", &result2, fetchFunc, time.Minute))
	assert.Equal(t, "fetched value", result2)
	assert.Equal(t, 1, fetchCount)
}

func TestCache_Increment(t *testing.T) {
	ctx := context.Background()
	_, _, cache := newTestCache(t)

	val, err := cache.Increment(ctx, "counter:test")
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	val, err = cache.Increment(ctx, "counter:test")
	require.NoError(t, err)
	assert.Equal(t, int64(2), val)
}

func TestCache_SetNX(t *testing.T) {
	ctx := context.Background()
	_, _, cache := newTestCache(t)

	ok, err := cache.SetNX(ctx, "setnx:test", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX(ctx, "setnx:test", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	var result string
	require.NoError(t, cache.Get(ctx, "setnx:test", &result))
	assert.Equal(t, "first", result)
}

func TestInvalidator_InvalidateLook(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger())
	inv := redis_a.NewInvalidator(cache, helpers.TestLogger())

	keys := map[string]string{
		"look:abc-123:details":  "look details",
		"look:seller:s1:list":   "seller listing",
		"look:other-456:detail": "unrelated look",
		"catalog:s1:page1":      "catalog page",
	}
	for key, value := range keys {
		require.NoError(t, cache.Set(ctx, key, value))
	}

	inv.InvalidateLook(ctx, "abc-123", "s1")

	for _, key := range []string{"look:abc-123:details", "look:seller:s1:list"} {
		var result string
		err := cache.Get(ctx, key, &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err, "key should be invalidated: %s", key)
	}
	for _, key := range []string{"look:other-456:detail", "catalog:s1:page1"} {
		var result string
		require.NoError(t, cache.Get(ctx, key, &result))
	}
}

func TestCache_BuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   redis_a.CacheKeyPrefix
		parts    []string
		expected string
	}{
		{
			name:     "catalog_key",
			prefix:   redis_a.PrefixCatalog,
			parts:    []string{"s1", "products", "page1"},
			expected: "catalog:s1:products:page1",
		},
		{
			name:     "look_key",
			prefix:   redis_a.PrefixLook,
			parts:    []string{"abc-123"},
			expected: "look:abc-123",
		},
		{
			name:     "no_parts",
			prefix:   redis_a.PrefixSession,
			parts:    []string{},
			expected: "session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := redis_a.BuildKey(tt.prefix, tt.parts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
