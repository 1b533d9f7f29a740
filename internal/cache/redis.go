// Package cache holds the redis connection and the read-through cache for
// generated interview documents.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the shared client used by the interview cache and the
// cache connectivity check.
func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

// Ping verifies the connection. Used at startup and by the health endpoint.
func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}
