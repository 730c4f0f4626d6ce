// Copyright (c) 2026 Ludex. All rights reserved.
// Author: dev@ludex.gg

/*
Package redis provides the managed client behind the artwork URL cache.

The catalog service keeps only small, short-lived strings in Redis (artwork
URLs keyed by game id) and also uses the client as a readiness-probe
dependency. The cache is strictly additive: every cached value can be
re-derived from PostgreSQL, so a lost round trip costs one extra query,
never correctness.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ludexhq/ludex/internal/platform/constants"
)

// The cache carries a handful of tiny strings, so the client is sized for
// fast failure rather than throughput: when Redis is slow or gone the
// repository falls through to PostgreSQL, and that fallback is only cheap
// if the cache gives up quickly.
const (
	poolSize       = 4
	minIdleConns   = 1
	dialTimeout    = 2 * time.Second
	commandTimeout = 1 * time.Second
	pingTimeout    = 2 * time.Second
)

// NewClient parses a Redis URL and returns a ready-to-use client.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.ClientName = constants.AppName
	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = commandTimeout
	options.WriteTimeout = commandTimeout

	// Honour caller deadlines (request contexts) over the static timeouts
	// when the caller's deadline is tighter.
	options.ContextTimeoutEnabled = true

	client := redis.NewClient(options)

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis client connected",
		slog.String("addr", options.Addr),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
