package request_models

type RecommendationRequest struct {
	ParkID      uint   `json:"parkId" binding:"required"`
	Month       string `json:"month" binding:"required"`
	Preferences string `json:"preferences" binding:"required"`
}
