package schema

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/db"
	domschema "github.com/kailas-cloud/weaviq/internal/domain/schema"
)

const cacheKey = "weaviq:schema"

// source is the consumer interface for the inner schema fetcher.
type source interface {
	Schema(ctx context.Context) (*domschema.Payload, error)
}

// store is the consumer interface for the schema cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Cached is a caching decorator over a schema source. Cache failures are
// logged and bypassed; they never fail a schema fetch.
type Cached struct {
	inner      source
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCached creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func NewCached(
	inner source,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cached {
	return &Cached{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Schema returns the cached payload when fresh, otherwise fetches from the
// inner source and refreshes the cache.
func (c *Cached) Schema(ctx context.Context) (*domschema.Payload, error) {
	if payload, ok := c.getFromCache(ctx); ok {
		c.incCache("hit")
		return payload, nil
	}
	c.incCache("miss")

	payload, err := c.inner.Schema(ctx)
	if err != nil {
		return nil, err
	}

	c.putInCache(ctx, payload)
	return payload, nil
}

// Invalidate drops the cached payload, forcing the next fetch to hit the
// instance.
func (c *Cached) Invalidate(ctx context.Context) {
	if err := c.store.Del(ctx, cacheKey); err != nil {
		c.logger.Warn("schema cache invalidate failed", zap.Error(err))
	}
}

func (c *Cached) getFromCache(ctx context.Context) (*domschema.Payload, bool) {
	data, err := c.store.Get(ctx, cacheKey)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("schema cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var payload domschema.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.logger.Warn("schema cache entry corrupt, dropping", zap.Error(err))
		_ = c.store.Del(ctx, cacheKey)
		return nil, false
	}
	return &payload, true
}

func (c *Cached) putInCache(ctx context.Context, payload *domschema.Payload) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warn("schema cache marshal failed", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, cacheKey, data, c.ttl); err != nil {
		c.logger.Warn("schema cache write failed", zap.Error(err))
	}
}

func (c *Cached) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
