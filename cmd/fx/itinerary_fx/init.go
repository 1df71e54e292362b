package itinerary_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/services"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryController)

func provideItineraryService(aiClient utils.AIClientInterface, planCache mem.PlanCacheStore) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient, planCache)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
