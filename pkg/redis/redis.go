package redis

import (
	"context"
	"time"

	"riftbook/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client with result unwrapping helpers.
type Client struct {
	*redis.Client
}

// NewClient creates a redis client from the configuration.
// Returns nil when no host is configured, callers treat a nil client as
// "memory cache only".
func NewClient(cfg config.RedisConfiguration) *Client {
	if cfg.Host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})

	return &Client{Client: client}
}

// Get wraps the redis GET to return the result directly.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

// Set wraps the redis SET to return the error directly.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	return c.Client.Close()
}
