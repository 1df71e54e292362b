package mem

import (
	"testing"
	"time"
)

func TestPlanCacheSetGet(t *testing.T) {
	cache := NewPlanCache()

	key := PlanCacheKey("Budapest", "")
	cache.Set(key, `{"tripTitle":"Budapest Trip"}`, time.Minute)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != `{"tripTitle":"Budapest Trip"}` {
		t.Errorf("content = %q", got)
	}
}

func TestPlanCacheExpiry(t *testing.T) {
	cache := NewPlanCache()

	key := PlanCacheKey("Budapest", "")
	cache.Set(key, "stale", -time.Second)

	if _, ok := cache.Get(key); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestPlanCacheKeyDistinguishesImage(t *testing.T) {
	plain := PlanCacheKey("Budapest", "")
	seeded := PlanCacheKey("Budapest", "aGVsbG8=")
	if plain == seeded {
		t.Error("photo-seeded request must not share a cache key with the plain one")
	}
	if PlanCacheKey("Budapest", "") != plain {
		t.Error("key derivation is not stable")
	}
}
