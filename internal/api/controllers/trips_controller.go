package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TripsController struct {
	tripService      services.TripServiceInterface
	itineraryService services.ItineraryServiceInterface
}

func NewTripsController(
	tripService services.TripServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *TripsController {
	return &TripsController{
		tripService:      tripService,
		itineraryService: itineraryService,
	}
}

// CreateTrip handles POST /api/trips
func (t *TripsController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "parkId, month and days are required")
		return
	}

	plan, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Trip created successfully")
}

// GenerateItinerary handles POST /api/trips/:id/generate
func (t *TripsController) GenerateItinerary(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	itinerary, err := t.itineraryService.GenerateItinerary(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GetTripDays handles GET /api/trips/:id/days
func (t *TripsController) GetTripDays(c *gin.Context) {
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	days, err := t.tripService.GetTripDays(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Trip days fetched successfully")
}

// GetDayActivities handles GET /api/days/:dayId/activities
func (t *TripsController) GetDayActivities(c *gin.Context) {
	dayID, ok := parseIDParam(c, "dayId")
	if !ok {
		return
	}

	activities, err := t.tripService.GetDayActivities(c.Request.Context(), dayID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Day activities fetched successfully")
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
