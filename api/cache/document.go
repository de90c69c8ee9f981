package cache

import (
	"context"
	"time"

	"riftbook/pkg/redis"

	"github.com/rs/zerolog"
)

// DocumentCache stores raw catalog documents with an in-memory front and an
// optional redis second level, so a process restart doesn't refetch the
// multi-megabyte catalog files.
type DocumentCache struct {
	mem      *TTLCache
	redis    *redis.Client
	redisTTL time.Duration
	logger   zerolog.Logger
}

// DocumentCacheDeps is the dependency list for the document cache.
type DocumentCacheDeps struct {
	// MemTTL is the expiration window of the in-memory front.
	MemTTL time.Duration

	// Redis is optional, nil runs memory only.
	Redis *redis.Client

	// RedisTTL is the expiration applied on redis writes, zero keeps the
	// document until the next catalog version overwrites it.
	RedisTTL time.Duration

	Clock  Clock
	Logger zerolog.Logger
}

// NewDocumentCache creates a document cache.
func NewDocumentCache(deps *DocumentCacheDeps) *DocumentCache {
	memTTL := deps.MemTTL
	if memTTL <= 0 {
		memTTL = 30 * time.Minute
	}

	return &DocumentCache{
		mem:      NewTTLCache(memTTL, deps.Clock),
		redis:    deps.Redis,
		redisTTL: deps.RedisTTL,
		logger:   deps.Logger,
	}
}

// Get returns a cached document, trying memory first and redis second.
// A redis hit is promoted into the memory front.
func (c *DocumentCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if value, ok := c.mem.Get(key); ok {
		if raw, ok := value.([]byte); ok {
			return raw, true
		}
	}

	if c.redis == nil {
		return nil, false
	}

	stored, err := c.redis.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	raw := []byte(stored)
	c.mem.Set(key, raw)
	return raw, true
}

// Set stores a document on both levels. Redis failures are logged and
// ignored, the cache is a best-effort accelerator.
func (c *DocumentCache) Set(ctx context.Context, key string, value []byte) {
	c.mem.Set(key, value)

	if c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, key, value, c.redisTTL); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("couldn't store the document on redis")
	}
}
