package flights_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(
	provideFlightSearchClient, provideFlightService, provideFlightsController)

func provideFlightSearchClient() utils.FlightSearchClientInterface {
	return utils.NewSerpApiClient()
}

func provideFlightService(
	searchClient utils.FlightSearchClientInterface,
	cache infra.FlightCache,
	aiClient utils.AIClientInterface,
) services.FlightServiceInterface {
	return services.NewFlightService(searchClient, cache, aiClient)
}

func provideFlightsController(flightService services.FlightServiceInterface) *controllers.FlightsController {
	return controllers.NewFlightsController(flightService)
}
