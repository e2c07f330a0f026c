package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// GetRecommendation handles POST /api/recommendations
func (r *RecommendationController) GetRecommendation(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "parkId, month and preferences are required")
		return
	}

	recommendation, err := r.recommendationService.GetRecommendation(
		c.Request.Context(), req.ParkID, req.Month, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"recommendation": recommendation}, "Recommendation fetched successfully")
}
