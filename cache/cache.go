package cache

import (
	"context"
	"encoding/json"
	"time"

	"tourgate/metrics"
)

// Cache is the gateway's process-wide key/value store. Values are stored as
// JSON so both backends behave identically. An entry lives until its TTL
// elapses or an explicit Delete/DeleteByPrefix/Flush removes it; entries are
// never partially updated.
type Cache interface {
	// Get unmarshals the entry for key into dest and reports whether it was
	// present and unexpired.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key. A non-positive ttl selects the backend's
	// default TTL.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key starting with prefix and returns how
	// many entries were removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	// Flush removes every entry.
	Flush(ctx context.Context) error
	Close() error
}

// GetOrCompute returns the cached value for key, or invokes produce on a
// miss and stores the result. Concurrent callers racing on the same absent
// key may each invoke produce; last write wins, which is safe because every
// value is recomputable from upstream state. Producer errors are returned
// uncached.
func GetOrCompute[T any](ctx context.Context, c Cache, key string, ttl time.Duration, produce func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	ok, err := c.Get(ctx, key, &cached)
	if err == nil && ok {
		metrics.CacheHit(key)
		return cached, nil
	}
	metrics.CacheMiss(key)

	value, err := produce(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		// A failed store degrades to pass-through; the computed value is
		// still correct.
		return value, nil
	}
	return value, nil
}

func marshalValue(value any) ([]byte, error) {
	return json.Marshal(value)
}

func unmarshalValue(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}
