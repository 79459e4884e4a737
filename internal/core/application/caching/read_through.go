package caching

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"delivery-api/internal/core/ports"

	"go.uber.org/zap"
)

// ReadThrough wraps a ports.Cache with JSON encoding. Cache failures never fail the
// caller: reads fall back to the loader and write/delete errors are logged.
//
// Every Invalidate bumps a generation counter. A Load whose store read overlapped
// an invalidation in this process drops its cache write, so a value read before a
// commit is not written back after that commit's invalidation. Writers in other
// processes are not covered; their stale entries live until the TTL expires.
type ReadThrough struct {
	cache  ports.Cache
	ttl    time.Duration
	logger *zap.Logger

	mu         sync.RWMutex
	generation uint64
}

func NewReadThrough(cache ports.Cache, ttl time.Duration, logger *zap.Logger) *ReadThrough {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReadThrough{
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "cache")),
	}
}

// Loader fetches a value from the authoritative store. found=false marks a miss
// that must not be cached.
type Loader[T any] func(ctx context.Context) (value T, found bool, err error)

// Load returns the cached value under key, or calls load and caches what it finds.
func Load[T any](ctx context.Context, rt *ReadThrough, key string, load Loader[T]) (T, bool, error) {
	data, err := rt.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		jsonErr := json.Unmarshal(data, &cached)
		if jsonErr == nil {
			return cached, true, nil
		}
		rt.logger.Warn("discarding undecodable cache entry", zap.String("key", key), zap.Error(jsonErr))
	case !errors.Is(err, ports.ErrCacheMiss):
		rt.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	gen := rt.currentGeneration()
	value, found, err := load(ctx)
	if err != nil || !found {
		return value, found, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		rt.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return value, true, nil
	}
	rt.store(ctx, key, encoded, gen)

	return value, true, nil
}

func (rt *ReadThrough) currentGeneration() uint64 {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.generation
}

// store writes under the read lock so it lands either before an invalidation's
// delete or not at all.
func (rt *ReadThrough) store(ctx context.Context, key string, encoded []byte, gen uint64) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	if rt.generation != gen {
		rt.logger.Debug("skipping cache write after concurrent invalidation", zap.String("key", key))
		return
	}
	if err := rt.cache.Set(ctx, key, encoded, rt.ttl); err != nil {
		rt.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops keys. Failures are logged and swallowed; entries then expire by TTL.
func (rt *ReadThrough) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.generation++

	if err := rt.cache.Delete(ctx, keys...); err != nil {
		rt.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
