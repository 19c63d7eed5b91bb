package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"curpcheck/internal/platform/config"
	dErrors "curpcheck/pkg/domain-errors"
)

// Client is the shared connection used by the rate-limit store.
type Client struct {
	*redis.Client
}

// New connects to the server at cfg.URL and pings it once. A nil client and
// nil error mean Redis is not configured and callers use in-memory stores.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	applyOverrides(opts, cfg)

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, fmt.Sprintf("redis at %s is unreachable", opts.Addr))
	}

	return &Client{Client: client}, nil
}

// applyOverrides layers non-zero settings from cfg over what the URL set.
func applyOverrides(opts *redis.Options, cfg config.RedisConfig) {
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
}

// Health pings the server; it backs the "redis" entry of GET /health.
func (c *Client) Health(ctx context.Context) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "redis ping failed")
	}
	return nil
}
