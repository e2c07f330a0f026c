package request_models

type CreateTripRequest struct {
	ParkID      uint   `json:"parkId" binding:"required"`
	Month       string `json:"month" binding:"required"`
	Days        int    `json:"days" binding:"required"`
	Preferences string `json:"preferences"`
	Name        string `json:"name"`
	UserID      string `json:"userId"`
}
