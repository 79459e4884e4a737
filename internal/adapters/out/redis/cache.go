// Package redis implements ports.Cache on top of go-redis, plus a noop store used
// when caching is disabled.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-api/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config describes the Redis connection and the default entry lifetime.
type Config struct {
	Addr       string
	Password   string
	DB         int
	DefaultTTL time.Duration
}

// Store is a Redis-backed ports.Cache.
type Store struct {
	client     *goredis.Client
	defaultTTL time.Duration
	logger     *zap.Logger
}

// NewStore connects to Redis and verifies the connection with PING.
func NewStore(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	if cfg.DefaultTTL <= 0 {
		return nil, fmt.Errorf("redis default TTL must be positive, got %s", cfg.DefaultTTL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("redis cache connected", zap.String("addr", cfg.Addr))

	return &Store{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
		logger:     logger,
	}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ports.ErrCacheMiss
	}

	res, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Set stores value under key. A non-positive ttl falls back to the configured default.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("cache key is required")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Close releases the client connections.
func (s *Store) Close() error {
	s.logger.Info("closing redis cache")
	return s.client.Close()
}

// NoopStore never stores anything; every Get is a miss.
type NoopStore struct{}

func (NoopStore) Get(context.Context, string) ([]byte, error) {
	return nil, ports.ErrCacheMiss
}

func (NoopStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NoopStore) Delete(context.Context, ...string) error {
	return nil
}
