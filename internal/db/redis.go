package db

import (
	"context"
	"fmt"

	"ctchen222/student-tracker/internal/config"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient creates and returns a new Redis client for the grade cache.
// It pings the server so a misconfigured address fails at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Ping the server to ensure the connection is established.
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}
