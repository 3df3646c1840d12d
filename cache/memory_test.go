package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tour:1", map[string]string{"name": "Inca Trail"}, 0))

	var got map[string]string
	ok, err := c.Get(ctx, "tour:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Inca Trail", got["name"])

	ok, err = c.Get(ctx, "tour:missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tours:all", []string{"a"}, 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)

	var got []string
	ok, err := c.Get(ctx, "tours:all", &got)
	require.NoError(t, err)
	assert.False(t, ok, "expired entry must read as absent")
}

func TestMemoryCacheDeleteByPrefix(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	for _, key := range []string{"tours:all", "tours:categoria:adventure", "tour:1", "bookings:all"} {
		require.NoError(t, c.Set(ctx, key, 1, 0))
	}

	removed, err := c.DeleteByPrefix(ctx, "tours:")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	var v int
	ok, _ := c.Get(ctx, "tour:1", &v)
	assert.True(t, ok, "sibling prefix must survive")
	ok, _ = c.Get(ctx, "bookings:all", &v)
	assert.True(t, ok)
}

func TestMemoryCacheFlush(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	require.NoError(t, c.Flush(ctx))
	assert.Equal(t, 0, c.Len())
}

func TestGetOrComputeCachesResult(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	calls := 0
	produce := func(ctx context.Context) (string, error) {
		calls++
		return "computed", nil
	}

	v, err := GetOrCompute(ctx, c, "key", 0, produce)
	require.NoError(t, err)
	assert.Equal(t, "computed", v)

	v, err = GetOrCompute(ctx, c, "key", 0, produce)
	require.NoError(t, err)
	assert.Equal(t, "computed", v)
	assert.Equal(t, 1, calls, "second read must come from cache")
}

func TestGetOrComputeProducerErrorNotCached(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.Close()
	ctx := context.Background()

	boom := errors.New("boom")
	calls := 0
	_, err := GetOrCompute(ctx, c, "key", 0, func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	})
	require.ErrorIs(t, err, boom)

	v, err := GetOrCompute(ctx, c, "key", 0, func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls, "error result must not be cached")
}
