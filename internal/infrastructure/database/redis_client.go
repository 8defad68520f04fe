package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a client from REDIS_ADDR (default localhost:6379),
// REDIS_PASSWORD and REDIS_DB, and pings it.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	db, _ := strconv.Atoi(getenvDefault("REDIS_DB", "0"))
	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: getenvDefault("REDIS_PASSWORD", ""),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
