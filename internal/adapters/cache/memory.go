package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"hotel_dashboard/internal/adapters/observability"
)

type entry struct {
	data []byte
	exp  time.Time // zero = no expiry
}

// Memory is the default process-local cache. Values pass through JSON so
// cached dashboards are isolated from later mutation, matching the Redis
// backend's semantics.
type Memory struct {
	mu sync.RWMutex
	m  map[string]entry
}

func NewMemory() *Memory { return &Memory{m: map[string]entry{}} }

func (c *Memory) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok || (!e.exp.IsZero() && time.Now().After(e.exp)) {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(e.data, dst)
}

func (c *Memory) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e := entry{data: b}
	if ttlSec != 0 { // 0 = keep for the process lifetime
		e.exp = time.Now().Add(time.Duration(ttlSec) * time.Second)
	}
	c.mu.Lock()
	c.m[key] = e
	c.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Memory) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
