package cache_fx

import (
	"log"

	"go.uber.org/fx"
	"voyago/internal/infra"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideFlightCache,
	providePlanCache)

func provideFlightCache() infra.FlightCache {
	client, err := infra.NewRedisClient()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	return client
}

func providePlanCache() mem.PlanCacheStore {
	return mem.NewPlanCache()
}
