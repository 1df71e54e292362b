package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// PlanTrip godoc
// @Summary Generate an itinerary
// @Description Generate a day-by-day AI itinerary for a destination, optionally seeded by a photo
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Destination and optional base64 photo"
// @Success 200 {object} response_models.ParsedItinerary
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/plan [post]
func (i *ItineraryController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	itinerary, err := i.itineraryService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
