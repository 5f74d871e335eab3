package service

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// DashboardCache holds memoized dashboard results until the next write.
// Every Flush starts a new generation, and a value computed under an older
// generation is dropped instead of stored.
type DashboardCache struct {
	*cache.Cache

	mu         sync.Mutex
	generation uint64
}

// NewDashboardCache creates a DashboardCache whose entries expire after ttl.
func NewDashboardCache(ttl time.Duration) *DashboardCache {
	return &DashboardCache{Cache: cache.New(ttl, 2*ttl)}
}

// Generation returns the current generation. Read it before computing a value
// that will be passed to SetIfCurrent.
func (c *DashboardCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetIfCurrent stores value under key only if no Flush happened since
// generation was read. It reports whether the value was stored.
func (c *DashboardCache) SetIfCurrent(key string, value interface{}, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != generation {
		return false
	}
	c.SetDefault(key, value)
	return true
}

// Flush drops every entry and starts a new generation.
func (c *DashboardCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.Cache.Flush()
}
