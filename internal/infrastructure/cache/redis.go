package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a redis client from a connection URL and pings
// it once so a bad address fails loudly at startup.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed, cache disabled: %v", err)
	}
	return rdb
}

// Close closes the client, ignoring errors on shutdown.
func Close(rdb *redis.Client) {
	_ = rdb.Close()
}
