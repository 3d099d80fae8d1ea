package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCacheClient struct holds the Redis client and context
type RedisCacheClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCacheClient initializes a new Redis-backed cache client. Expiry is
// handled natively by Redis, so a read past the TTL is simply a miss.
func NewRedisCacheClient(ctx context.Context, client *redis.Client) *RedisCacheClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &RedisCacheClient{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a key-value pair with the given TTL. A zero TTL means no expiry.
func (r *RedisCacheClient) Set(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key, mapping redis.Nil to ErrCacheMiss.
func (r *RedisCacheClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisCacheClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *RedisCacheClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *RedisCacheClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
