package redis

import (
	"context"
	"errors"
	"time"

	"delivery-api/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedCache counts cache lookups by outcome.
type InstrumentedCache struct {
	next    ports.Cache
	lookups *prometheus.CounterVec
}

// NewInstrumentedCache wraps next and registers the delivery_cache_lookups_total counter on reg.
func NewInstrumentedCache(next ports.Cache, reg prometheus.Registerer) (*InstrumentedCache, error) {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups partitioned by result (hit, miss, error).",
	}, []string{"result"})

	if err := reg.Register(lookups); err != nil {
		return nil, err
	}

	return &InstrumentedCache{next: next, lookups: lookups}, nil
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.next.Get(ctx, key)
	switch {
	case err == nil:
		c.lookups.WithLabelValues("hit").Inc()
	case errors.Is(err, ports.ErrCacheMiss):
		c.lookups.WithLabelValues("miss").Inc()
	default:
		c.lookups.WithLabelValues("error").Inc()
	}
	return value, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.next.Set(ctx, key, value, ttl)
}

func (c *InstrumentedCache) Delete(ctx context.Context, keys ...string) error {
	return c.next.Delete(ctx, keys...)
}
