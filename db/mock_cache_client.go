package db

import (
	"path"
	"sync"
	"time"
)

// mockEntry pairs a value with its expiry deadline. A zero deadline means
// the entry never expires.
type mockEntry struct {
	value    string
	expireAt time.Time
}

// MockCacheClient simulates the TTL cache in memory for testing purposes.
// Entries expire lazily: a read past the deadline deletes the entry and
// reports a miss. Access is mutex-serialized since expiry-check-then-mutate
// is not atomic otherwise.
type MockCacheClient struct {
	data map[string]mockEntry
	mu   sync.Mutex
	now  func() time.Time
}

// NewMockCacheClient initializes a new MockCacheClient.
func NewMockCacheClient() *MockCacheClient {
	return &MockCacheClient{
		data: make(map[string]mockEntry),
		now:  time.Now,
	}
}

// SetClock overrides the clock so tests can step time past an expiry.
func (m *MockCacheClient) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Set stores a key-value pair with the given TTL.
func (m *MockCacheClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expireAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Get retrieves a value, lazily evicting it if its deadline has passed.
func (m *MockCacheClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, exists := m.data[key]
	if !exists {
		return "", ErrCacheMiss
	}
	if !entry.expireAt.IsZero() && m.now().After(entry.expireAt) {
		delete(m.data, key)
		return "", ErrCacheMiss
	}
	return entry.value, nil
}

// Keys returns the live keys matching a glob pattern.
func (m *MockCacheClient) Keys(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k, entry := range m.data {
		if !entry.expireAt.IsZero() && m.now().After(entry.expireAt) {
			delete(m.data, k)
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MockCacheClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping simulates a cache Ping operation.
func (m *MockCacheClient) Ping() error {
	return nil
}
