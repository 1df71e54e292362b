package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"voyago/internal/models/response_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// SaveTrip godoc
// @Summary Save a trip
// @Description Persist a generated itinerary for the authenticated user
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body response_models.ParsedItinerary true "Validated itinerary"
// @Success 200 {object} response_models.SavedTripResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripsController) SaveTrip(c *gin.Context) {
	var itinerary response_models.ParsedItinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be an itinerary document")
		return
	}

	userId := c.GetString("user_id")

	saved, err := t.tripService.SaveTrip(c.Request.Context(), userId, &itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List saved trips
// @Description Fetch a paginated list of the authenticated user's saved trips, newest first
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.SavedTripSummary
// @Security BearerAuth
// @Router /trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userId := c.GetString("user_id")

	trips, err := t.tripService.ListTrips(c.Request.Context(), userId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripById godoc
// @Summary Get a saved trip
// @Description Fetch one saved trip with its full itinerary
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.SavedTripResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripsController) GetTripById(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	trip, err := t.tripService.GetTripById(c.Request.Context(), userId, tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Description Remove one of the authenticated user's saved trips
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripsController) DeleteTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := t.tripService.DeleteTrip(c.Request.Context(), userId, tripId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
