package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripreco/pkg/observability"
)

// Cache is the backing store for session-scoped data. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is the in-process default when no redis address is
// configured. Expired entries are dropped lazily on read.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]memoryEntry)}
}

func (m *MemoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(e.data, dst)
}

func (m *MemoryCache) Set(_ context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.data[key] = memoryEntry{data: b, expiresAt: exp}
	m.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (m *MemoryCache) Del(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
