package db

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when a key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// CacheClient defines the methods available on the process-wide TTL cache.
// Losing the cache is never a correctness problem, only extra API calls.
type CacheClient interface {
	Set(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	Ping() error
}
