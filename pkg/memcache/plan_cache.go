// pkg/memcache/plan_cache.go
package mem

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// PlanCacheStore caches raw generated itinerary text so a repeated request
// for the same destination does not burn another model call.
type PlanCacheStore interface {
	Get(key string) (string, bool)
	Set(key string, content string, ttl time.Duration)
}

type planEntry struct {
	content   string
	expiresAt time.Time
}

type PlanCache struct {
	mu   sync.RWMutex
	data map[string]planEntry
}

func NewPlanCache() *PlanCache {
	return &PlanCache{
		data: make(map[string]planEntry),
	}
}

func (c *PlanCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.content, true
}

func (c *PlanCache) Set(key string, content string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = planEntry{
		content:   content,
		expiresAt: time.Now().Add(ttl),
	}

	// Simple cleanup: drop expired entries once the cache grows large.
	if len(c.data) > 1000 {
		now := time.Now()
		for k, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, k)
			}
		}
	}
}

// PlanCacheKey derives a stable key from the request inputs.
func PlanCacheKey(destination, imageBase64 string) string {
	h := sha256.New()
	h.Write([]byte(destination))
	h.Write([]byte(imageBase64))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
