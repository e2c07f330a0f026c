package controllers

import (
	"github.com/gin-gonic/gin"

	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ParksController struct {
	parkService services.ParkServiceInterface
}

func NewParksController(parkService services.ParkServiceInterface) *ParksController {
	return &ParksController{parkService: parkService}
}

// GetAllParks handles GET /api/parks
func (p *ParksController) GetAllParks(c *gin.Context) {
	parks, err := p.parkService.GetAllParks(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, parks, "Parks fetched successfully")
}

// GetParkByID handles GET /api/parks/:id
func (p *ParksController) GetParkByID(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	park, err := p.parkService.GetParkByID(c.Request.Context(), parkID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, park, "Park fetched successfully")
}

// GetParksByMonth handles GET /api/parks/month/:month
func (p *ParksController) GetParksByMonth(c *gin.Context) {
	parks, err := p.parkService.GetParksByMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, parks, "Parks fetched successfully")
}

// GetParkActivities handles GET /api/parks/:id/activities
func (p *ParksController) GetParkActivities(c *gin.Context) {
	parkID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activities, err := p.parkService.GetParkActivities(c.Request.Context(), parkID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Park activities fetched successfully")
}
