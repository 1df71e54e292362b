package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type FlightsController struct {
	flightService services.FlightServiceInterface
}

func NewFlightsController(flightService services.FlightServiceInterface) *FlightsController {
	return &FlightsController{
		flightService: flightService,
	}
}

// SearchFlights godoc
// @Summary Search flights
// @Description Search flights between two airports; results are deduplicated and sorted by price
// @Tags Flights
// @Produce json
// @Param departure_id query string true "Departure IATA code"
// @Param arrival_id query string true "Arrival IATA code"
// @Param outbound_date query string true "Outbound date (YYYY-MM-DD)"
// @Param return_date query string false "Return date, required for round trips"
// @Param type query string true "1 = round trip, 2 = one way"
// @Param stops query string false "0 = any, 1 = nonstop"
// @Success 200 {object} response_models.FlightsResponse
// @Security BearerAuth
// @Router /flights/search [get]
func (f *FlightsController) SearchFlights(c *gin.Context) {
	var params request_models.FlightSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}

	response, err := f.flightService.SearchFlights(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Flights fetched successfully")
}

// LookupIataCode godoc
// @Summary Look up an IATA code
// @Description Resolve a city name to its primary 3-letter airport code
// @Tags Flights
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /flights/iata [get]
func (f *FlightsController) LookupIataCode(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City name is required")
		return
	}

	code, err := f.flightService.LookupIataCode(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"city": city, "iata_code": code}, "IATA code resolved successfully")
}
